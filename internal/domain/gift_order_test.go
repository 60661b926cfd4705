package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestGiftOrder_HasRecipient(t *testing.T) {
	full := GiftOrder{RecipientName: strPtr("Jane"), RecipientPhone: strPtr("5550100222"), RecipientNationalID: strPtr("AB-123")}
	assert.True(t, full.HasRecipient())

	for name, mutate := range map[string]func(*GiftOrder){
		"name":        func(g *GiftOrder) { g.RecipientName = nil },
		"phone":       func(g *GiftOrder) { g.RecipientPhone = nil },
		"national id": func(g *GiftOrder) { g.RecipientNationalID = nil },
	} {
		t.Run("missing "+name, func(t *testing.T) {
			g := full
			mutate(&g)
			assert.False(t, g.HasRecipient())
		})
	}
}

func TestNewGiftOrderView(t *testing.T) {
	img := "https://cdn.example.com/mug.png"
	order := &GiftOrder{
		ID:                  42,
		BusinessID:          3,
		Status:              OrderStatusFulfilled,
		TotalAmount:         decimal.RequireFromString("120.50"),
		Currency:            "USD",
		CreatedAt:           time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		RecipientName:       strPtr("Jane Doe"),
		RecipientPhone:      strPtr("+1 555 010 0222"),
		RecipientNationalID: strPtr("AB-123456"),
	}
	items := []GiftOrderItem{
		{ID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("25.25"), TotalPrice: decimal.RequireFromString("50.50"), ProductID: 100, ProductName: "Mug", ProductImageURL: &img},
		{ID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("70.00"), TotalPrice: decimal.RequireFromString("70.00"), ProductID: 101, ProductName: "Tea Set"},
	}

	view := NewGiftOrderView(order, items)

	assert.Equal(t, uint64(42), view.ID)
	assert.True(t, view.IsGift)
	assert.False(t, view.IsRedeemed)
	assert.Equal(t, 120.5, view.TotalAmount)
	assert.Equal(t, RecipientInfo{Name: "Jane Doe", Phone: "+1 555 010 0222", NationalID: "AB-123456"}, view.RecipientInfo)

	require.Len(t, view.Items, 2)
	var sum float64
	for i, it := range view.Items {
		assert.Equal(t, items[i].ID, it.ID)
		assert.Equal(t, items[i].ProductID, it.Product.ID)
		assert.Equal(t, items[i].ProductName, it.Product.Name)
		assert.InDelta(t, items[i].TotalPrice.InexactFloat64(), it.TotalPrice, 1e-9)
		sum += it.TotalPrice
	}
	assert.InDelta(t, view.TotalAmount, sum, 1e-9)
	assert.Equal(t, &img, view.Items[0].Product.ImageURL)
	assert.Nil(t, view.Items[1].Product.ImageURL)
}

func TestNewGiftOrderView_NoItemsEncodesEmptyArray(t *testing.T) {
	order := &GiftOrder{
		ID:                  7,
		Status:              OrderStatusPaid,
		RecipientName:       strPtr("A"),
		RecipientPhone:      strPtr("B"),
		RecipientNationalID: strPtr("C"),
	}

	raw, err := json.Marshal(NewGiftOrderView(order, nil))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, []any{}, decoded["items"])
	assert.Equal(t, true, decoded["isGift"])
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusPaid, OrderStatusProcessing, OrderStatusFulfilled, OrderStatusCancelled, OrderStatusRefunded} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("shipped").Valid())
}
