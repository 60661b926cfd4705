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
	MsgAdminOnly        = "Forbidden: admin access required."
	MsgSelfBan          = "You cannot ban yourself."
	MsgUserNotFound     = "User not found."
	MsgBusinessNotFound = "Business not found."
)

// SessionRevoker drops every live session of a user.
type SessionRevoker interface {
	RevokeUser(ctx context.Context, userID uint64) error
}

type ModerationService struct {
	users      repository.UserRepository
	businesses repository.BusinessRepository
	sessions   SessionRevoker
	publisher  rabbit.PublisherInterface
	logger     *zap.Logger
}

func NewModerationService(u repository.UserRepository, b repository.BusinessRepository, sessions SessionRevoker, pub rabbit.PublisherInterface, logger *zap.Logger) *ModerationService {
	return &ModerationService{
		users:      u,
		businesses: b,
		sessions:   sessions,
		publisher:  pub,
		logger:     logger,
	}
}

func (s *ModerationService) BanUser(ctx context.Context, admin *domain.User, userID uint64) (*domain.PublicUser, error) {
	if !admin.HasRole(domain.RoleAdmin) {
		return nil, apperr.Forbidden(MsgAdminOnly)
	}
	if userID == admin.ID {
		return nil, apperr.InvalidRequest(MsgSelfBan)
	}

	user, err := s.users.UpdateStatus(ctx, userID, domain.UserStatusBanned)
	if err != nil {
		s.logger.Error("Failed to ban user", zap.Uint64("user_id", userID), zap.Error(err))
		return nil, apperr.Internal("ban user", err)
	}
	if user == nil {
		return nil, apperr.NotFound(MsgUserNotFound)
	}

	if err := s.sessions.RevokeUser(ctx, userID); err != nil {
		s.logger.Error("Failed to revoke sessions of banned user", zap.Uint64("user_id", userID), zap.Error(err))
	}

	evt := domain.UserBannedEvent{UserID: userID, BannedBy: admin.ID, BannedAt: time.Now().UTC()}
	go s.publish(context.Background(), domain.EventUserBanned, evt)

	s.logger.Info("User banned", zap.Uint64("user_id", userID), zap.Uint64("admin_id", admin.ID))

	public, err := user.Public()
	if err != nil {
		s.logger.Warn("Banned user has malformed coordinates, returning null",
			zap.Uint64("user_id", userID),
			zap.Error(err))
	}
	return &public, nil
}

func (s *ModerationService) SuspendBusiness(ctx context.Context, admin *domain.User, businessID uint64) (*domain.Business, error) {
	if !admin.HasRole(domain.RoleAdmin) {
		return nil, apperr.Forbidden(MsgAdminOnly)
	}

	business, err := s.businesses.UpdateStatus(ctx, businessID, domain.BusinessStatusSuspended)
	if err != nil {
		s.logger.Error("Failed to suspend business", zap.Uint64("business_id", businessID), zap.Error(err))
		return nil, apperr.Internal("suspend business", err)
	}
	if business == nil {
		return nil, apperr.NotFound(MsgBusinessNotFound)
	}

	evt := domain.BusinessSuspendedEvent{BusinessID: businessID, SuspendedBy: admin.ID, SuspendedAt: time.Now().UTC()}
	go s.publish(context.Background(), domain.EventBusinessSuspended, evt)

	s.logger.Info("Business suspended", zap.Uint64("business_id", businessID), zap.Uint64("admin_id", admin.ID))
	return business, nil
}

func (s *ModerationService) publish(ctx context.Context, pattern string, evt any) {
	if err := s.publisher.Publish(ctx, pattern, evt); err != nil {
		s.logger.Error("Failed to publish event", zap.String("pattern", pattern), zap.Error(err))
	}
}
