package mysql

import (
	"context"
	"errors"
	"time"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/repository"

	"gorm.io/gorm"
)

type businessRepo struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepo{db: db}
}

func (r *businessRepo) FindByOwnerID(ctx context.Context, ownerID uint64) (*domain.Business, error) {
	var b domain.Business
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *businessRepo) UpdateStatus(ctx context.Context, id uint64, status domain.BusinessStatus) (*domain.Business, error) {
	var out *domain.Business
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Business{}).Where("id = ?", id).Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
		if res.Error != nil {
			return res.Error
		}

		var b domain.Business
		if err := tx.First(&b, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		out = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
