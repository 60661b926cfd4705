package mocks

import (
	"context"

	"marketplace-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

type MockBusinessRepository struct {
	mock.Mock
}

type MockGiftOrderRepository struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

type MockTokenStore struct {
	mock.Mock
}

type MockSessionRevoker struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, message any) error {
	args := m.Called(ctx, topic, message)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uint64, status domain.UserStatus) (*domain.User, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBusinessRepository) FindByOwnerID(ctx context.Context, ownerID uint64) (*domain.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) UpdateStatus(ctx context.Context, id uint64, status domain.BusinessStatus) (*domain.Business, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockGiftOrderRepository) FindByIDAndCode(ctx context.Context, orderID uint64, code string) (*domain.GiftOrder, error) {
	args := m.Called(ctx, orderID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GiftOrder), args.Error(1)
}

func (m *MockGiftOrderRepository) FindItems(ctx context.Context, orderID uint64) ([]domain.GiftOrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GiftOrderItem), args.Error(1)
}

func (m *MockGiftOrderRepository) MarkRedeemed(ctx context.Context, orderID uint64, code string) (bool, error) {
	args := m.Called(ctx, orderID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) Lookup(ctx context.Context, token string) (uint64, bool, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(uint64), args.Bool(1), args.Error(2)
}

func (m *MockSessionRevoker) RevokeUser(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
