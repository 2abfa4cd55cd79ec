package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"emporium/internal/domain"
	apperrors "emporium/internal/errors"
)

type StatusOrderRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	UpdateStatusFields(ctx context.Context, id uint, status string, shippedAt, deliveredAt *time.Time, notes *string) error
	UpdatePaymentFields(ctx context.Context, id uint, paymentStatus string, paymentReference, notes *string) error
}

type StatusItemRepository interface {
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

// StatusService drives the shipping and payment lifecycles of an order.
// By default any status may overwrite any other, matching the historical
// behavior; strict mode consults the domain transition table instead.
type StatusService struct {
	orderRepo         StatusOrderRepository
	orderItemRepo     StatusItemRepository
	logger            *zap.Logger
	strictTransitions bool
	now               func() time.Time
}

func NewStatusService(
	orderRepo StatusOrderRepository,
	orderItemRepo StatusItemRepository,
	logger *zap.Logger,
	strictTransitions bool,
) *StatusService {
	return &StatusService{
		orderRepo:         orderRepo,
		orderItemRepo:     orderItemRepo,
		logger:            logger,
		strictTransitions: strictTransitions,
		now:               time.Now,
	}
}

// UpdateStatus overwrites the order status and derives timestamp side
// effects: shipped stamps shipped_at, delivered stamps delivered_at and
// backfills shipped_at when the shipped transition was skipped. Supplied
// notes replace the stored notes. Everything is persisted as one write.
func (s *StatusService) UpdateStatus(ctx context.Context, orderID uint, newStatus string, notes *string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if s.strictTransitions && !domain.CanTransitionStatus(order.Status, newStatus) {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("status transition from %s to %s is not allowed", order.Status, newStatus))
	}

	var shippedAt, deliveredAt *time.Time
	now := s.now()

	if newStatus == domain.OrderStatusShipped {
		shippedAt = &now
	}
	if newStatus == domain.OrderStatusDelivered {
		deliveredAt = &now
		if order.ShippedAt == nil {
			shippedAt = &now
		}
	}

	if err := s.orderRepo.UpdateStatusFields(ctx, orderID, newStatus, shippedAt, deliveredAt, notes); err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.Uint("orderId", orderID),
		zap.String("from", order.Status),
		zap.String("to", newStatus))

	return s.refresh(ctx, orderID)
}

// UpdatePaymentStatus overwrites the payment status, optionally the payment
// reference and notes. The shipping lifecycle and its timestamps are not
// touched.
func (s *StatusService) UpdatePaymentStatus(ctx context.Context, orderID uint, newPaymentStatus string, paymentReference, notes *string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdatePaymentFields(ctx, orderID, newPaymentStatus, paymentReference, notes); err != nil {
		return nil, err
	}

	s.logger.Info("order payment status updated",
		zap.Uint("orderId", orderID),
		zap.String("from", order.PaymentStatus),
		zap.String("to", newPaymentStatus))

	return s.refresh(ctx, orderID)
}

func (s *StatusService) refresh(ctx context.Context, orderID uint) (*domain.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.orderItemRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}
