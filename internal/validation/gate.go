package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"emporium/internal/dto"
	apperrors "emporium/internal/errors"
)

// Gate holds the request schemas. It is built once at startup and shared by
// reference; the underlying validator is immutable after construction.
type Gate struct {
	validate *validator.Validate
}

func NewGate() *Gate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Gate{validate: v}
}

func (g *Gate) ValidateCreateOrder(req dto.CreateOrderRequest) error {
	return g.translate(g.validate.Struct(req))
}

func (g *Gate) ValidateStatusUpdate(req dto.UpdateStatusRequest) error {
	return g.translate(g.validate.Struct(req))
}

func (g *Gate) ValidatePaymentStatusUpdate(req dto.UpdatePaymentStatusRequest) error {
	return g.translate(g.validate.Struct(req))
}

func (g *Gate) translate(err error) error {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewInternalError("validating request", err)
	}

	details := make([]apperrors.ValidationDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperrors.ValidationDetail{
			Field:   fieldPath(fe.Namespace()),
			Message: messageFor(fe),
		})
	}

	return apperrors.NewValidationError("validation failed", details...)
}

// fieldPath strips the root struct name from the validator namespace, leaving
// the wire-level path, e.g. "items[0].quantity".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "min":
		return fe.Field() + " must contain at least " + fe.Param() + " entries"
	case "max":
		return fe.Field() + " exceeds maximum length of " + fe.Param()
	case "len":
		return fe.Field() + " must be exactly " + fe.Param() + " characters"
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
