package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"emporium/internal/domain"
)

type OrderResponse struct {
	ID               uint                `json:"id"`
	UserID           int64               `json:"userId"`
	OrderNumber      string              `json:"orderNumber"`
	Status           string              `json:"status"`
	Subtotal         decimal.Decimal     `json:"subtotal"`
	TaxAmount        decimal.Decimal     `json:"taxAmount"`
	ShippingAmount   decimal.Decimal     `json:"shippingAmount"`
	DiscountAmount   decimal.Decimal     `json:"discountAmount"`
	TotalAmount      decimal.Decimal     `json:"totalAmount"`
	Currency         string              `json:"currency"`
	PaymentStatus    string              `json:"paymentStatus"`
	PaymentMethod    string              `json:"paymentMethod"`
	PaymentReference *string             `json:"paymentReference,omitempty"`
	ShippingAddress  domain.Address      `json:"shippingAddress"`
	BillingAddress   *domain.Address     `json:"billingAddress,omitempty"`
	Notes            *string             `json:"notes,omitempty"`
	ShippedAt        *time.Time          `json:"shippedAt,omitempty"`
	DeliveredAt      *time.Time          `json:"deliveredAt,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	Items            []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ID          uint            `json:"id"`
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	ProductSKU  string          `json:"productSku"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

func NewOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductSKU:  it.ProductSKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}

	return OrderResponse{
		ID:               o.ID,
		UserID:           o.UserID,
		OrderNumber:      o.OrderNumber,
		Status:           o.Status,
		Subtotal:         o.Subtotal,
		TaxAmount:        o.TaxAmount,
		ShippingAmount:   o.ShippingAmount,
		DiscountAmount:   o.DiscountAmount,
		TotalAmount:      o.TotalAmount,
		Currency:         o.Currency,
		PaymentStatus:    o.PaymentStatus,
		PaymentMethod:    o.PaymentMethod,
		PaymentReference: o.PaymentReference,
		ShippingAddress:  o.ShippingAddress,
		BillingAddress:   o.BillingAddress,
		Notes:            o.Notes,
		ShippedAt:        o.ShippedAt,
		DeliveredAt:      o.DeliveredAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		Items:            items,
	}
}
