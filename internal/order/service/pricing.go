package service

import (
	"github.com/shopspring/decimal"

	"emporium/internal/dto"
)

// DefaultTaxRate is applied to the subtotal whenever the caller does not
// supply an explicit tax amount.
var DefaultTaxRate = decimal.NewFromFloat(0.075)

type PriceBreakdown struct {
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	ShippingAmount decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
}

// ComputePricing derives the monetary breakdown for a set of requested line
// items. A supplied tax amount is taken verbatim; shipping and discount
// default to zero. Inputs are assumed non-negative (the validation gate
// rejects everything else), so there are no error paths.
func ComputePricing(items []dto.OrderItemInput, taxAmount, shippingAmount, discountAmount *float64) PriceBreakdown {
	subtotal := decimal.Zero
	for _, item := range items {
		unitPrice := decimal.NewFromFloat(item.UnitPrice).Round(2)
		subtotal = subtotal.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	tax := subtotal.Mul(DefaultTaxRate).Round(2)
	if taxAmount != nil {
		tax = decimal.NewFromFloat(*taxAmount).Round(2)
	}

	shipping := decimal.Zero
	if shippingAmount != nil {
		shipping = decimal.NewFromFloat(*shippingAmount).Round(2)
	}

	discount := decimal.Zero
	if discountAmount != nil {
		discount = decimal.NewFromFloat(*discountAmount).Round(2)
	}

	return PriceBreakdown{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		ShippingAmount: shipping,
		DiscountAmount: discount,
		TotalAmount:    subtotal.Add(tax).Add(shipping).Sub(discount),
	}
}
