package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one purchased line. ProductName and ProductSKU are snapshots
// captured at creation time so historical orders stay readable after the
// product record changes. Items are created together with their order and
// never mutated afterwards.
type OrderItem struct {
	ID          uint
	OrderID     uint
	ProductID   int
	ProductName string
	ProductSKU  string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
}
