package product

import (
	"github.com/shopspring/decimal"

	"emporium/internal/domain"
)

type ProductDTO struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"isActive"`
}

func newProductDTO(p *domain.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Price:       p.Price,
		IsActive:    p.IsActive,
	}
}
