package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"emporium/internal/dto"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestComputePricing_DefaultTax(t *testing.T) {
	items := []dto.OrderItemInput{
		{ProductID: 1, Quantity: 2, UnitPrice: 10.00},
	}

	breakdown := ComputePricing(items, nil, nil, nil)

	assert.True(t, breakdown.Subtotal.Equal(decimal.RequireFromString("20.00")), "subtotal = %s", breakdown.Subtotal)
	assert.True(t, breakdown.TaxAmount.Equal(decimal.RequireFromString("1.50")), "tax = %s", breakdown.TaxAmount)
	assert.True(t, breakdown.ShippingAmount.IsZero())
	assert.True(t, breakdown.DiscountAmount.IsZero())
	assert.True(t, breakdown.TotalAmount.Equal(decimal.RequireFromString("21.50")), "total = %s", breakdown.TotalAmount)
}

func TestComputePricing_ExplicitTaxTakenVerbatim(t *testing.T) {
	items := []dto.OrderItemInput{
		{ProductID: 1, Quantity: 1, UnitPrice: 100.00},
	}

	// Nowhere near 7.5%, used as supplied.
	breakdown := ComputePricing(items, floatPtr(50.00), nil, nil)

	assert.True(t, breakdown.TaxAmount.Equal(decimal.RequireFromString("50.00")))
	assert.True(t, breakdown.TotalAmount.Equal(decimal.RequireFromString("150.00")))
}

func TestComputePricing_ShippingAndDiscount(t *testing.T) {
	items := []dto.OrderItemInput{
		{ProductID: 1, Quantity: 3, UnitPrice: 19.99},
		{ProductID: 2, Quantity: 1, UnitPrice: 5.01},
	}

	breakdown := ComputePricing(items, nil, floatPtr(9.95), floatPtr(10.00))

	subtotal := decimal.RequireFromString("64.98")
	tax := subtotal.Mul(DefaultTaxRate).Round(2)

	assert.True(t, breakdown.Subtotal.Equal(subtotal), "subtotal = %s", breakdown.Subtotal)
	assert.True(t, breakdown.TaxAmount.Equal(tax), "tax = %s", breakdown.TaxAmount)
	assert.True(t, breakdown.ShippingAmount.Equal(decimal.RequireFromString("9.95")))
	assert.True(t, breakdown.DiscountAmount.Equal(decimal.RequireFromString("10.00")))

	expectedTotal := subtotal.Add(tax).Add(decimal.RequireFromString("9.95")).Sub(decimal.RequireFromString("10.00"))
	assert.True(t, breakdown.TotalAmount.Equal(expectedTotal), "total = %s", breakdown.TotalAmount)
}

func TestComputePricing_TotalIdentityHolds(t *testing.T) {
	cases := []struct {
		name     string
		items    []dto.OrderItemInput
		tax      *float64
		shipping *float64
		discount *float64
	}{
		{"single item", []dto.OrderItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 0.01}}, nil, nil, nil},
		{"many items", []dto.OrderItemInput{
			{ProductID: 1, Quantity: 7, UnitPrice: 3.33},
			{ProductID: 2, Quantity: 2, UnitPrice: 0.99},
			{ProductID: 3, Quantity: 1, UnitPrice: 149.50},
		}, nil, floatPtr(12.34), nil},
		{"everything supplied", []dto.OrderItemInput{
			{ProductID: 1, Quantity: 4, UnitPrice: 25.25},
		}, floatPtr(1.23), floatPtr(4.56), floatPtr(7.89)},
		{"free item", []dto.OrderItemInput{{ProductID: 1, Quantity: 10, UnitPrice: 0}}, nil, nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := ComputePricing(tc.items, tc.tax, tc.shipping, tc.discount)

			identity := b.Subtotal.Add(b.TaxAmount).Add(b.ShippingAmount).Sub(b.DiscountAmount)
			assert.True(t, b.TotalAmount.Equal(identity),
				"total %s != subtotal+tax+shipping-discount %s", b.TotalAmount, identity)

			// Two decimal places, exactly.
			assert.True(t, b.TotalAmount.Equal(b.TotalAmount.Round(2)))
		})
	}
}

func TestComputePricing_DefaultTaxRounding(t *testing.T) {
	// 0.01 * 0.075 = 0.00075, rounds to 0.00
	b := ComputePricing([]dto.OrderItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 0.01}}, nil, nil, nil)
	assert.True(t, b.TaxAmount.IsZero(), "tax = %s", b.TaxAmount)

	// 0.07 * 0.075 = 0.00525, rounds to 0.01
	b = ComputePricing([]dto.OrderItemInput{{ProductID: 1, Quantity: 1, UnitPrice: 0.07}}, nil, nil, nil)
	assert.True(t, b.TaxAmount.Equal(decimal.RequireFromString("0.01")), "tax = %s", b.TaxAmount)
}
