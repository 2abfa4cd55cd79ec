package dto

import "emporium/internal/domain"

type CreateOrderRequest struct {
	UserID          int64            `json:"userId" validate:"required,gt=0"`
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   string           `json:"paymentMethod" validate:"required,oneof=credit_card debit_card paypal bank_transfer cash_on_delivery"`
	Currency        string           `json:"currency" validate:"omitempty,len=3"`
	ShippingAddress AddressInput     `json:"shippingAddress" validate:"required"`
	BillingAddress  *AddressInput    `json:"billingAddress"`
	TaxAmount       *float64         `json:"taxAmount" validate:"omitempty,gte=0"`
	ShippingAmount  *float64         `json:"shippingAmount" validate:"omitempty,gte=0"`
	DiscountAmount  *float64         `json:"discountAmount" validate:"omitempty,gte=0"`
	Notes           *string          `json:"notes" validate:"omitempty,max=1000"`
}

type OrderItemInput struct {
	ProductID int     `json:"productId" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	UnitPrice float64 `json:"unitPrice" validate:"gte=0"`
}

type AddressInput struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Street     string `json:"street" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required,len=2"`
	Phone      string `json:"phone"`
}

func (a AddressInput) ToDomain() domain.Address {
	return domain.Address{
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}
