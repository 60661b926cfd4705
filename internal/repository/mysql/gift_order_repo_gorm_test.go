package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-service/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var giftOrderColumns = []string{
	"id", "business_id", "status", "total_amount", "currency", "created_at",
	"recipient_name", "recipient_phone", "recipient_national_id", "is_redeemed",
}

func TestGiftOrderRepo_FindByIDAndCode(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(sqlmock.Sqlmock)
		wantNil bool
		wantErr error
		check   func(*testing.T, *domain.GiftOrder)
	}{
		{
			name: "matching order and code",
			mock: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(giftOrderColumns).
					AddRow(42, 7, "paid", "120.50", "USD", createdAt, "Jane Doe", "+1 555 0100 22", "AB-12345", false)
				m.ExpectQuery("SELECT .* FROM `orders` JOIN gift_order_metadata ON gift_order_metadata.order_id = orders.id WHERE").
					WillReturnRows(rows)
			},
			check: func(t *testing.T, g *domain.GiftOrder) {
				assert.Equal(t, uint64(42), g.ID)
				assert.Equal(t, uint64(7), g.BusinessID)
				assert.Equal(t, domain.OrderStatusPaid, g.Status)
				assert.Equal(t, "120.5", g.TotalAmount.String())
				assert.Equal(t, "USD", g.Currency)
				assert.True(t, g.HasRecipient())
				assert.Equal(t, "Jane Doe", *g.RecipientName)
				assert.False(t, g.IsRedeemed)
			},
		},
		{
			name: "missing recipient columns are kept as nil",
			mock: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(giftOrderColumns).
					AddRow(42, 7, "paid", "10.00", "USD", createdAt, nil, "+1 555 0100 22", nil, false)
				m.ExpectQuery("SELECT .* FROM `orders`").WillReturnRows(rows)
			},
			check: func(t *testing.T, g *domain.GiftOrder) {
				assert.Nil(t, g.RecipientName)
				assert.Nil(t, g.RecipientNationalID)
				assert.False(t, g.HasRecipient())
			},
		},
		{
			name: "no match",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT .* FROM `orders`").WillReturnRows(sqlmock.NewRows(giftOrderColumns))
			},
			wantNil: true,
		},
		{
			name: "unknown order status",
			mock: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(giftOrderColumns).
					AddRow(42, 7, "shipped", "10.00", "USD", createdAt, "Jane Doe", "+1 555 0100 22", "AB-12345", false)
				m.ExpectQuery("SELECT .* FROM `orders`").WillReturnRows(rows)
			},
			wantErr: errors.New(`order 42 has unknown status "shipped"`),
		},
		{
			name: "query error",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery("SELECT .* FROM `orders`").WillReturnError(errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mock(mock)

			repo := NewGiftOrderRepository(db)
			got, err := repo.FindByIDAndCode(context.Background(), 42, "ABC123")

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				if tt.wantNil {
					assert.Nil(t, got)
				} else {
					require.NotNil(t, got)
					tt.check(t, got)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGiftOrderRepo_FindItems(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{
		"id", "quantity", "unit_price", "total_price", "product_id", "product_name", "product_image_url",
	}).
		AddRow(1, 2, "25.25", "50.50", 100, "Mug", "https://cdn.example.com/mug.png").
		AddRow(2, 1, "70.00", "70.00", 101, "Tea Set", nil)
	mock.ExpectQuery("SELECT .* FROM `order_items` JOIN products ON products.id = order_items.product_id WHERE").
		WillReturnRows(rows)

	repo := NewGiftOrderRepository(db)
	items, err := repo.FindItems(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, uint64(100), items[0].ProductID)
	assert.Equal(t, "Mug", items[0].ProductName)
	require.NotNil(t, items[0].ProductImageURL)
	assert.Equal(t, 50.5, items[0].TotalPrice.InexactFloat64())
	assert.Nil(t, items[1].ProductImageURL)
	assert.Equal(t, 70.0, items[1].UnitPrice.InexactFloat64())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftOrderRepo_FindItems_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT .* FROM `order_items`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	items, err := NewGiftOrderRepository(db).FindItems(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGiftOrderRepo_MarkRedeemed(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		want     bool
	}{
		{name: "first redemption wins", affected: 1, want: true},
		{name: "already redeemed", affected: 0, want: false},
		{name: "update error", execErr: errors.New("deadlock")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			exp := mock.ExpectExec("UPDATE `gift_order_metadata` SET .*is_redeemed.* WHERE order_id = .* AND redemption_code = .* AND is_redeemed = ")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			ok, err := NewGiftOrderRepository(db).MarkRedeemed(context.Background(), 42, "ABC123")
			if tt.execErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
