package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID               uint
	UserID           int64
	OrderNumber      string
	Status           string
	Subtotal         decimal.Decimal
	TaxAmount        decimal.Decimal
	ShippingAmount   decimal.Decimal
	DiscountAmount   decimal.Decimal
	TotalAmount      decimal.Decimal
	Currency         string
	PaymentStatus    string
	PaymentMethod    string
	PaymentReference *string
	ShippingAddress  Address
	BillingAddress   *Address
	Notes            *string
	ShippedAt        *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Items            []OrderItem
}

type Address struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusRefunded   = "refunded"
)

const (
	PaymentStatusPending           = "pending"
	PaymentStatusPaid              = "paid"
	PaymentStatusFailed            = "failed"
	PaymentStatusRefunded          = "refunded"
	PaymentStatusPartiallyRefunded = "partially_refunded"
)

const (
	PaymentMethodCreditCard     = "credit_card"
	PaymentMethodDebitCard      = "debit_card"
	PaymentMethodPayPal         = "paypal"
	PaymentMethodBankTransfer   = "bank_transfer"
	PaymentMethodCashOnDelivery = "cash_on_delivery"
)

// statusTransitions is the legality table consulted only when strict
// transition checking is enabled. The historical behavior lets any status
// overwrite any other; the table is an opt-in tightening, not the default.
var statusTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusConfirmed:  {OrderStatusProcessing, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded},
	OrderStatusDelivered:  {OrderStatusRefunded},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
}

func CanTransitionStatus(from, to string) bool {
	if from == to {
		return true
	}
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Total recomputes the grand total from the stored monetary components.
func (o Order) Total() decimal.Decimal {
	return o.Subtotal.Add(o.TaxAmount).Add(o.ShippingAmount).Sub(o.DiscountAmount)
}
