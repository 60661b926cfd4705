package services

import (
	"context"
	"time"

	"marketplace-service/internal/apperr"
	"marketplace-service/internal/domain"
	rabbit "marketplace-service/internal/infra/rabbitmq"
	"marketplace-service/internal/repository"

	"go.uber.org/zap"
)

const (
	MsgNotBusinessOwner     = "Not a business owner."
	MsgNoAssociatedBusiness = "No associated business found."
	MsgInvalidCombination   = "Invalid Order ID and Redemption Code combination."
	MsgNotYourGiftOrder     = "This gift order does not belong to your business."
	MsgMissingRecipient     = "Order is missing recipient information."
	MsgAlreadyRedeemed      = "This gift order has already been redeemed."
)

type GiftService struct {
	businesses   repository.BusinessRepository
	giftOrders   repository.GiftOrderRepository
	publisher    rabbit.PublisherInterface
	logger       *zap.Logger
	lenientItems bool
}

type GiftServiceOption func(*GiftService)

// WithStrictItems makes a failed item query fail verification instead of
// degrading to an empty item list.
func WithStrictItems() GiftServiceOption {
	return func(s *GiftService) { s.lenientItems = false }
}

func NewGiftService(b repository.BusinessRepository, g repository.GiftOrderRepository, pub rabbit.PublisherInterface, logger *zap.Logger, opts ...GiftServiceOption) *GiftService {
	s := &GiftService{
		businesses:   b,
		giftOrders:   g,
		publisher:    pub,
		logger:       logger,
		lenientItems: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Verify checks that orderID and code identify a gift order fulfilled by
// the caller's business and returns its view. It never changes state.
func (s *GiftService) Verify(ctx context.Context, user *domain.User, orderID uint64, code string) (*domain.GiftOrderView, error) {
	_, order, err := s.lookup(ctx, user, orderID, code)
	if err != nil {
		return nil, err
	}

	items, err := s.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	view := domain.NewGiftOrderView(order, items)
	return &view, nil
}

// Redeem verifies the gift order and then flips it to redeemed with a single
// conditional update. Of two concurrent redemptions only one succeeds.
func (s *GiftService) Redeem(ctx context.Context, user *domain.User, orderID uint64, code string) (*domain.GiftOrderView, error) {
	business, order, err := s.lookup(ctx, user, orderID, code)
	if err != nil {
		return nil, err
	}
	if order.IsRedeemed {
		return nil, apperr.Conflict(MsgAlreadyRedeemed)
	}

	// Items are loaded before the commit so a strict-mode item failure
	// leaves the order unredeemed.
	items, err := s.loadItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	ok, err := s.giftOrders.MarkRedeemed(ctx, order.ID, code)
	if err != nil {
		s.logger.Error("Failed to mark gift order redeemed",
			zap.Uint64("order_id", order.ID),
			zap.Error(err))
		return nil, apperr.Internal("mark gift order redeemed", err)
	}
	if !ok {
		return nil, apperr.Conflict(MsgAlreadyRedeemed)
	}
	order.IsRedeemed = true

	evt := domain.GiftOrderRedeemedEvent{
		OrderID:    order.ID,
		BusinessID: business.ID,
		RedeemedBy: user.ID,
		RedeemedAt: time.Now().UTC(),
	}
	go s.publish(context.Background(), domain.EventGiftOrderRedeemed, evt)

	s.logger.Info("Gift order redeemed",
		zap.Uint64("order_id", order.ID),
		zap.Uint64("business_id", business.ID))

	view := domain.NewGiftOrderView(order, items)
	return &view, nil
}

// lookup runs the authorization and matching sequence shared by Verify and
// Redeem. Order of checks: role, owned business, (id, code) match,
// ownership, recipient integrity.
func (s *GiftService) lookup(ctx context.Context, user *domain.User, orderID uint64, code string) (*domain.Business, *domain.GiftOrder, error) {
	if !user.HasRole(domain.RoleBusiness) {
		return nil, nil, apperr.Forbidden(MsgNotBusinessOwner)
	}
	if orderID == 0 || code == "" {
		return nil, nil, apperr.InvalidRequest("orderId and redemptionCode are required.")
	}

	business, err := s.businesses.FindByOwnerID(ctx, user.ID)
	if err != nil {
		s.logger.Error("Failed to load business for owner",
			zap.Uint64("user_id", user.ID),
			zap.Error(err))
		return nil, nil, apperr.Internal("load business", err)
	}
	if business == nil {
		return nil, nil, apperr.Forbidden(MsgNoAssociatedBusiness)
	}

	order, err := s.giftOrders.FindByIDAndCode(ctx, orderID, code)
	if err != nil {
		s.logger.Error("Failed to load gift order",
			zap.Uint64("order_id", orderID),
			zap.Error(err))
		return nil, nil, apperr.Internal("load gift order", err)
	}
	if order == nil {
		return nil, nil, apperr.NotFound(MsgInvalidCombination)
	}

	if order.BusinessID != business.ID {
		s.logger.Warn("Gift order requested by non-owning business",
			zap.Uint64("order_id", orderID),
			zap.Uint64("business_id", business.ID))
		return nil, nil, apperr.Forbidden(MsgNotYourGiftOrder)
	}

	if !order.HasRecipient() {
		s.logger.Error("Gift order is missing recipient information",
			zap.Uint64("order_id", orderID))
		return nil, nil, apperr.Integrity(MsgMissingRecipient)
	}

	return business, order, nil
}

func (s *GiftService) loadItems(ctx context.Context, orderID uint64) ([]domain.GiftOrderItem, error) {
	items, err := s.giftOrders.FindItems(ctx, orderID)
	if err == nil {
		return items, nil
	}

	if !s.lenientItems {
		return nil, apperr.Internal("load gift order items", err)
	}
	s.logger.Error("Failed to load gift order items, returning empty list",
		zap.Uint64("order_id", orderID),
		zap.Error(err))
	return []domain.GiftOrderItem{}, nil
}

func (s *GiftService) publish(ctx context.Context, pattern string, evt any) {
	if err := s.publisher.Publish(ctx, pattern, evt); err != nil {
		s.logger.Error("Failed to publish event",
			zap.String("pattern", pattern),
			zap.Error(err))
	}
}
