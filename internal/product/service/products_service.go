package service

import (
	"context"

	"emporium/internal/domain"
)

type Repository interface {
	FindByID(ctx context.Context, id int) (*domain.Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}
