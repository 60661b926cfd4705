package mysql

import (
	"context"
	"fmt"
	"time"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type giftOrderRepo struct {
	db *gorm.DB
}

func NewGiftOrderRepository(db *gorm.DB) repository.GiftOrderRepository {
	return &giftOrderRepo{db: db}
}

type giftOrderRow struct {
	ID                  uint64             `gorm:"column:id"`
	BusinessID          uint64             `gorm:"column:business_id"`
	Status              domain.OrderStatus `gorm:"column:status"`
	TotalAmount         decimal.Decimal    `gorm:"column:total_amount"`
	Currency            string             `gorm:"column:currency"`
	CreatedAt           time.Time          `gorm:"column:created_at"`
	RecipientName       *string            `gorm:"column:recipient_name"`
	RecipientPhone      *string            `gorm:"column:recipient_phone"`
	RecipientNationalID *string            `gorm:"column:recipient_national_id"`
	IsRedeemed          bool               `gorm:"column:is_redeemed"`
}

type giftOrderItemRow struct {
	ID              uint64          `gorm:"column:id"`
	Quantity        int             `gorm:"column:quantity"`
	UnitPrice       decimal.Decimal `gorm:"column:unit_price"`
	TotalPrice      decimal.Decimal `gorm:"column:total_price"`
	ProductID       uint64          `gorm:"column:product_id"`
	ProductName     string          `gorm:"column:product_name"`
	ProductImageURL *string         `gorm:"column:product_image_url"`
}

// redemption_code uses a binary collation, so the equality below is
// case-sensitive.
func (r *giftOrderRepo) FindByIDAndCode(ctx context.Context, orderID uint64, code string) (*domain.GiftOrder, error) {
	var rows []giftOrderRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("orders.id, orders.business_id, orders.status, orders.total_amount, orders.currency, orders.created_at, " +
			"gift_order_metadata.recipient_name, gift_order_metadata.recipient_phone, " +
			"gift_order_metadata.recipient_national_id, gift_order_metadata.is_redeemed").
		Joins("JOIN gift_order_metadata ON gift_order_metadata.order_id = orders.id").
		Where("orders.id = ? AND gift_order_metadata.redemption_code = ?", orderID, code).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	row := rows[0]
	if !row.Status.Valid() {
		return nil, fmt.Errorf("order %d has unknown status %q", row.ID, row.Status)
	}
	return &domain.GiftOrder{
		ID:                  row.ID,
		BusinessID:          row.BusinessID,
		Status:              row.Status,
		TotalAmount:         row.TotalAmount,
		Currency:            row.Currency,
		CreatedAt:           row.CreatedAt,
		RecipientName:       row.RecipientName,
		RecipientPhone:      row.RecipientPhone,
		RecipientNationalID: row.RecipientNationalID,
		IsRedeemed:          row.IsRedeemed,
	}, nil
}

func (r *giftOrderRepo) FindItems(ctx context.Context, orderID uint64) ([]domain.GiftOrderItem, error) {
	var rows []giftOrderItemRow
	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.id, order_items.quantity, order_items.unit_price, order_items.total_price, " +
			"products.id AS product_id, products.name AS product_name, products.image_url AS product_image_url").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.GiftOrderItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.GiftOrderItem{
			ID:              row.ID,
			Quantity:        row.Quantity,
			UnitPrice:       row.UnitPrice,
			TotalPrice:      row.TotalPrice,
			ProductID:       row.ProductID,
			ProductName:     row.ProductName,
			ProductImageURL: row.ProductImageURL,
		})
	}
	return items, nil
}

func (r *giftOrderRepo) MarkRedeemed(ctx context.Context, orderID uint64, code string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.GiftOrderMetadata{}).
		Where("order_id = ? AND redemption_code = ? AND is_redeemed = ?", orderID, code, false).
		Updates(map[string]any{
			"is_redeemed": true,
			"redeemed_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
