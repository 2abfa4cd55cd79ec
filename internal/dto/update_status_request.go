package dto

type UpdateStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=pending confirmed processing shipped delivered cancelled refunded"`
	Notes  *string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus    string  `json:"paymentStatus" validate:"required,oneof=pending paid failed refunded partially_refunded"`
	PaymentReference *string `json:"paymentReference" validate:"omitempty,max=255"`
	Notes            *string `json:"notes" validate:"omitempty,max=1000"`
}
