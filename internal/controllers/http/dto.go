package http

type GiftOrderRequest struct {
	OrderID        uint64 `json:"orderId" binding:"required,gt=0"`
	RedemptionCode string `json:"redemptionCode" binding:"required"`
}

type BanUserRequest struct {
	UserID uint64 `json:"userId" binding:"required,gt=0"`
}

type SuspendBusinessRequest struct {
	BusinessID uint64 `json:"businessId" binding:"required,gt=0"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
