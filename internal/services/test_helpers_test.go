package services

import (
	"time"

	"marketplace-service/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	TestOrderID    = uint64(42)
	TestCode       = "ABC123"
	TestBusinessID = uint64(3)
	TestOwnerID    = uint64(7)
	TestAdminID    = uint64(1)
)

func strPtr(s string) *string { return &s }

func CreateMockUser(id uint64, role domain.Role) *domain.User {
	return &domain.User{
		ID:        id,
		Name:      "Test User",
		Email:     "user@example.com",
		Role:      role,
		Status:    domain.UserStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func CreateMockBusiness(id, ownerID uint64) *domain.Business {
	return &domain.Business{
		ID:      id,
		OwnerID: ownerID,
		Name:    "Corner Bakery",
		Status:  domain.BusinessStatusActive,
	}
}

func CreateMockGiftOrder(id, businessID uint64, redeemed bool) *domain.GiftOrder {
	return &domain.GiftOrder{
		ID:                  id,
		BusinessID:          businessID,
		Status:              domain.OrderStatusPaid,
		TotalAmount:         decimal.RequireFromString("120.50"),
		Currency:            "USD",
		CreatedAt:           time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		RecipientName:       strPtr("Jane Doe"),
		RecipientPhone:      strPtr("+1 (555) 010-0222"),
		RecipientNationalID: strPtr("AB-123456"),
		IsRedeemed:          redeemed,
	}
}

func CreateMockItems() []domain.GiftOrderItem {
	return []domain.GiftOrderItem{
		{
			ID:              1,
			Quantity:        2,
			UnitPrice:       decimal.RequireFromString("25.25"),
			TotalPrice:      decimal.RequireFromString("50.50"),
			ProductID:       100,
			ProductName:     "Mug",
			ProductImageURL: strPtr("https://cdn.example.com/mug.png"),
		},
		{
			ID:          2,
			Quantity:    1,
			UnitPrice:   decimal.RequireFromString("70.00"),
			TotalPrice:  decimal.RequireFromString("70.00"),
			ProductID:   101,
			ProductName: "Tea Set",
		},
	}
}
