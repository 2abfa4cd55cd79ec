package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"emporium/internal/domain"
	"emporium/internal/dto"
	apperrors "emporium/internal/errors"
)

type OrderCreationService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
}

// CreateOrderUseCase wraps the creation transaction with a bounded retry
// policy. Order numbers carry only timestamp+random entropy, so a duplicate
// key can happen under load; each retry regenerates the number. Deadlocks
// are retried the same way.
type CreateOrderUseCase struct {
	creationSvc      OrderCreationService
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewCreateOrderUseCase(creationSvc OrderCreationService, logger *zap.Logger, maxRetryAttempts int) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		creationSvc:      creationSvc,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	maxAttempts := uc.maxRetryAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	// Backoff intervals: attempt 1 (0ms), attempt 2 (100ms), attempt 3 (200ms).
	backoffs := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		order, err := uc.creationSvc.Create(ctx, req)
		if err == nil {
			return order, nil
		}
		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < maxAttempts {
			base := backoffs[min(attempt, len(backoffs))-1]
			// Jitter: ±20% of backoff base.
			jitter := time.Duration(float64(base) * (0.8 + rand.Float64()*0.4))
			time.Sleep(jitter)
			uc.logger.Warn("retrying order creation",
				zap.Int("attempt", attempt),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
		}
	}

	return nil, lastErr
}

func isRetryable(err error) bool {
	if _, ok := apperrors.IsDuplicateError(err); ok {
		return true
	}
	return isDeadlockError(err)
}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}
