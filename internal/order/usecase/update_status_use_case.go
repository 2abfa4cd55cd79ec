package usecase

import (
	"context"

	"go.uber.org/zap"

	"emporium/internal/domain"
)

type OrderStatusService interface {
	UpdateStatus(ctx context.Context, orderID uint, newStatus string, notes *string) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID uint, newPaymentStatus string, paymentReference, notes *string) (*domain.Order, error)
}

type UpdateStatusUseCase struct {
	statusSvc OrderStatusService
	logger    *zap.Logger
}

func NewUpdateStatusUseCase(statusSvc OrderStatusService, logger *zap.Logger) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		statusSvc: statusSvc,
		logger:    logger,
	}
}

func (uc *UpdateStatusUseCase) UpdateStatus(ctx context.Context, orderID uint, newStatus string, notes *string) (*domain.Order, error) {
	uc.logger.Debug("status update requested", zap.Uint("orderId", orderID), zap.String("status", newStatus))
	return uc.statusSvc.UpdateStatus(ctx, orderID, newStatus, notes)
}

func (uc *UpdateStatusUseCase) UpdatePaymentStatus(ctx context.Context, orderID uint, newPaymentStatus string, paymentReference, notes *string) (*domain.Order, error) {
	uc.logger.Debug("payment status update requested", zap.Uint("orderId", orderID), zap.String("paymentStatus", newPaymentStatus))
	return uc.statusSvc.UpdatePaymentStatus(ctx, orderID, newPaymentStatus, paymentReference, notes)
}
