package product

import (
	"context"

	"emporium/internal/domain"
)

type Service interface {
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
}
