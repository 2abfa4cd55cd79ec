package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransitionStatus_ForwardPath(t *testing.T) {
	assert.True(t, CanTransitionStatus(OrderStatusPending, OrderStatusConfirmed))
	assert.True(t, CanTransitionStatus(OrderStatusConfirmed, OrderStatusProcessing))
	assert.True(t, CanTransitionStatus(OrderStatusProcessing, OrderStatusShipped))
	assert.True(t, CanTransitionStatus(OrderStatusShipped, OrderStatusDelivered))
	assert.True(t, CanTransitionStatus(OrderStatusDelivered, OrderStatusRefunded))
}

func TestCanTransitionStatus_SameStatusAllowed(t *testing.T) {
	for _, status := range []string{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded,
	} {
		assert.True(t, CanTransitionStatus(status, status), status)
	}
}

func TestCanTransitionStatus_SkipsRejected(t *testing.T) {
	assert.False(t, CanTransitionStatus(OrderStatusPending, OrderStatusDelivered))
	assert.False(t, CanTransitionStatus(OrderStatusPending, OrderStatusShipped))
	assert.False(t, CanTransitionStatus(OrderStatusConfirmed, OrderStatusDelivered))
}

func TestCanTransitionStatus_BackwardsRejected(t *testing.T) {
	assert.False(t, CanTransitionStatus(OrderStatusDelivered, OrderStatusPending))
	assert.False(t, CanTransitionStatus(OrderStatusShipped, OrderStatusProcessing))
}

func TestCanTransitionStatus_AbsorbingStates(t *testing.T) {
	assert.False(t, CanTransitionStatus(OrderStatusCancelled, OrderStatusPending))
	assert.False(t, CanTransitionStatus(OrderStatusCancelled, OrderStatusConfirmed))
	assert.False(t, CanTransitionStatus(OrderStatusRefunded, OrderStatusPending))
}

func TestCanTransitionStatus_CancellableFromAnyActive(t *testing.T) {
	for _, from := range []string{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped,
	} {
		assert.True(t, CanTransitionStatus(from, OrderStatusCancelled), from)
	}
}

func TestOrderTotal(t *testing.T) {
	o := Order{
		Subtotal:       decimal.RequireFromString("20.00"),
		TaxAmount:      decimal.RequireFromString("1.50"),
		ShippingAmount: decimal.RequireFromString("5.00"),
		DiscountAmount: decimal.RequireFromString("2.00"),
	}

	assert.True(t, o.Total().Equal(decimal.RequireFromString("24.50")))
}

func TestOrderTotal_ZeroComponents(t *testing.T) {
	o := Order{Subtotal: decimal.RequireFromString("20.00")}

	assert.True(t, o.Total().Equal(decimal.RequireFromString("20.00")))
}
