package domain

import "time"

const (
	EventUserBanned        = "user.banned"
	EventBusinessSuspended = "business.suspended"
	EventGiftOrderRedeemed = "gift_order.redeemed"
)

type UserBannedEvent struct {
	UserID   uint64    `json:"userId"`
	BannedBy uint64    `json:"bannedBy"`
	BannedAt time.Time `json:"bannedAt"`
}

type BusinessSuspendedEvent struct {
	BusinessID  uint64    `json:"businessId"`
	SuspendedBy uint64    `json:"suspendedBy"`
	SuspendedAt time.Time `json:"suspendedAt"`
}

type GiftOrderRedeemedEvent struct {
	OrderID    uint64    `json:"orderId"`
	BusinessID uint64    `json:"businessId"`
	RedeemedBy uint64    `json:"redeemedBy"`
	RedeemedAt time.Time `json:"redeemedAt"`
}
