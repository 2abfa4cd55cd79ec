package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emporium/internal/domain"
)

func TestOrderItemRepository_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(uint(42), 1, "Widget", "WID-001", 2, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := NewMySQLOrderItemRepository(db)

	tx, err := db.Begin()
	require.NoError(t, err)

	item := domain.OrderItem{
		OrderID:     42,
		ProductID:   1,
		ProductName: "Widget",
		ProductSKU:  "WID-001",
		Quantity:    2,
		UnitPrice:   decimal.RequireFromString("10.00"),
		TotalPrice:  decimal.RequireFromString("20.00"),
	}

	id, err := repo.Insert(context.Background(), tx, item)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderItemRepository_FindByOrderID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "order_id", "product_id", "product_name", "product_sku",
		"quantity", "unit_price", "total_price", "created_at",
	}).
		AddRow(1, 42, 1, "Widget", "WID-001", 2, "10.00", "20.00", now).
		AddRow(2, 42, 5, "Gadget", "GAD-005", 1, "75.50", "75.50", now)

	mock.ExpectQuery("SELECT (.+) FROM order_items").
		WithArgs(uint(42)).
		WillReturnRows(rows)

	repo := NewMySQLOrderItemRepository(db)

	items, err := repo.FindByOrderID(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Widget", items[0].ProductName)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, items[0].TotalPrice.Equal(decimal.RequireFromString("20.00")))
	assert.Equal(t, "GAD-005", items[1].ProductSKU)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderItemRepository_FindByOrderID_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM order_items").
		WithArgs(uint(999)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "order_id", "product_id", "product_name", "product_sku",
			"quantity", "unit_price", "total_price", "created_at",
		}))

	repo := NewMySQLOrderItemRepository(db)

	items, err := repo.FindByOrderID(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.NoError(t, mock.ExpectationsWereMet())
}
