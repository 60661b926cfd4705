package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusFulfilled  OrderStatus = "fulfilled"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusFulfilled, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

type Order struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	BusinessID  uint64          `json:"businessId" gorm:"not null;index"`
	Status      OrderStatus     `json:"status" gorm:"type:enum('pending','paid','processing','fulfilled','cancelled','refunded');default:'pending'"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	Currency    string          `json:"currency" gorm:"size:3;not null"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID         uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID    uint64          `json:"orderId" gorm:"not null;index"`
	ProductID  uint64          `json:"productId" gorm:"not null;index"`
	Quantity   int             `json:"quantity" gorm:"not null"`
	UnitPrice  decimal.Decimal `json:"unitPrice" gorm:"type:decimal(12,2);not null"`
	TotalPrice decimal.Decimal `json:"totalPrice" gorm:"type:decimal(12,2);not null"`
}

func (OrderItem) TableName() string { return "order_items" }

type Product struct {
	ID       uint64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" gorm:"size:255;not null"`
	ImageURL *string `json:"imageUrl" gorm:"column:image_url;size:1024"`
}

func (Product) TableName() string { return "products" }
