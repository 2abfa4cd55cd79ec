package usecase

import (
	"context"

	"emporium/internal/domain"
)

type OrderReader interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int64) ([]domain.Order, error)
}

type OrderItemReader interface {
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

type GetOrderUseCase struct {
	orderRepo     OrderReader
	orderItemRepo OrderItemReader
}

func NewGetOrderUseCase(orderRepo OrderReader, orderItemRepo OrderItemReader) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

func (uc *GetOrderUseCase) GetOrder(ctx context.Context, orderID uint) (*domain.Order, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := uc.orderItemRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (uc *GetOrderUseCase) ListOrdersByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return uc.orderRepo.FindByUserID(ctx, userID)
}
