package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int
	Name        string
	SKU         string
	Description string
	Price       decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductSnapshot is the denormalized slice of a product persisted onto an
// order item.
type ProductSnapshot struct {
	ID   int
	Name string
	SKU  string
}
