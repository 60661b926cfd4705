package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GiftOrderMetadata marks an order as a gift. An order without a row here
// is not a gift order.
type GiftOrderMetadata struct {
	ID                  uint64     `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID             uint64     `json:"orderId" gorm:"not null;uniqueIndex"`
	RecipientName       *string    `json:"recipientName" gorm:"size:255"`
	RecipientPhone      *string    `json:"recipientPhone" gorm:"size:32"`
	RecipientNationalID *string    `json:"recipientNationalId" gorm:"column:recipient_national_id;size:32"`
	RedemptionCode      string     `json:"-" gorm:"type:varchar(64) COLLATE utf8mb4_bin;not null;index"`
	IsRedeemed          bool       `json:"isRedeemed" gorm:"not null;default:false"`
	RedeemedAt          *time.Time `json:"redeemedAt"`
}

func (GiftOrderMetadata) TableName() string { return "gift_order_metadata" }

// GiftOrder is the joined projection of an order and its gift metadata.
type GiftOrder struct {
	ID                  uint64
	BusinessID          uint64
	Status              OrderStatus
	TotalAmount         decimal.Decimal
	Currency            string
	CreatedAt           time.Time
	RecipientName       *string
	RecipientPhone      *string
	RecipientNationalID *string
	IsRedeemed          bool
}

// HasRecipient reports whether every recipient field is present.
func (g *GiftOrder) HasRecipient() bool {
	return g.RecipientName != nil && g.RecipientPhone != nil && g.RecipientNationalID != nil
}

type GiftOrderItem struct {
	ID              uint64
	Quantity        int
	UnitPrice       decimal.Decimal
	TotalPrice      decimal.Decimal
	ProductID       uint64
	ProductName     string
	ProductImageURL *string
}

type RecipientInfo struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalId"`
}

type ProductSummary struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
}

type GiftOrderItemView struct {
	ID         uint64         `json:"id"`
	Quantity   int            `json:"quantity"`
	UnitPrice  float64        `json:"unitPrice"`
	TotalPrice float64        `json:"totalPrice"`
	Product    ProductSummary `json:"product"`
}

type GiftOrderView struct {
	ID            uint64              `json:"id"`
	Status        OrderStatus         `json:"status"`
	TotalAmount   float64             `json:"totalAmount"`
	Currency      string              `json:"currency"`
	CreatedAt     time.Time           `json:"createdAt"`
	RecipientInfo RecipientInfo       `json:"recipientInfo"`
	IsGift        bool                `json:"isGift"`
	IsRedeemed    bool                `json:"isRedeemed"`
	Items         []GiftOrderItemView `json:"items"`
}

// NewGiftOrderView assembles the response contract. The caller must have
// checked HasRecipient.
func NewGiftOrderView(o *GiftOrder, items []GiftOrderItem) GiftOrderView {
	views := make([]GiftOrderItemView, 0, len(items))
	for _, it := range items {
		views = append(views, GiftOrderItemView{
			ID:         it.ID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice.InexactFloat64(),
			TotalPrice: it.TotalPrice.InexactFloat64(),
			Product: ProductSummary{
				ID:       it.ProductID,
				Name:     it.ProductName,
				ImageURL: it.ProductImageURL,
			},
		})
	}

	return GiftOrderView{
		ID:          o.ID,
		Status:      o.Status,
		TotalAmount: o.TotalAmount.InexactFloat64(),
		Currency:    o.Currency,
		CreatedAt:   o.CreatedAt,
		RecipientInfo: RecipientInfo{
			Name:       *o.RecipientName,
			Phone:      *o.RecipientPhone,
			NationalID: *o.RecipientNationalID,
		},
		IsGift:     true,
		IsRedeemed: o.IsRedeemed,
		Items:      views,
	}
}
