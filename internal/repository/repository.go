package repository

import (
	"context"

	"marketplace-service/internal/domain"
)

// Lookups return (nil, nil) when no row matches.

type BusinessRepository interface {
	FindByOwnerID(ctx context.Context, ownerID uint64) (*domain.Business, error)
	UpdateStatus(ctx context.Context, id uint64, status domain.BusinessStatus) (*domain.Business, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uint64) (*domain.User, error)
	UpdateStatus(ctx context.Context, id uint64, status domain.UserStatus) (*domain.User, error)
}

type GiftOrderRepository interface {
	FindByIDAndCode(ctx context.Context, orderID uint64, code string) (*domain.GiftOrder, error)
	FindItems(ctx context.Context, orderID uint64) ([]domain.GiftOrderItem, error)
	// MarkRedeemed flips is_redeemed with a single conditional update and
	// reports whether this call performed the transition.
	MarkRedeemed(ctx context.Context, orderID uint64, code string) (bool, error)
}
