package usecase

import (
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"emporium/internal/domain"
	"emporium/internal/dto"
	apperrors "emporium/internal/errors"
)

type mockCreationService struct {
	CreateFunc func(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
}

func (m *mockCreationService) Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	return m.CreateFunc(ctx, req)
}

func TestCreateOrder_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	svc := &mockCreationService{
		CreateFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
			calls++
			return &domain.Order{ID: 1, OrderNumber: "ORD-1-001"}, nil
		},
	}

	uc := NewCreateOrderUseCase(svc, zap.NewNop(), 3)

	order, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, 1, calls)
}

func TestCreateOrder_RetriesOnDuplicateNumber(t *testing.T) {
	calls := 0
	svc := &mockCreationService{
		CreateFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
			calls++
			if calls < 3 {
				return nil, apperrors.NewDuplicateError("order number already exists", nil)
			}
			return &domain.Order{ID: 2}, nil
		},
	}

	uc := NewCreateOrderUseCase(svc, zap.NewNop(), 3)

	order, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint(2), order.ID)
	assert.Equal(t, 3, calls)
}

func TestCreateOrder_RetriesOnDeadlock(t *testing.T) {
	calls := 0
	svc := &mockCreationService{
		CreateFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
			calls++
			if calls == 1 {
				return nil, &mysql.MySQLError{Number: 1213, Message: "Deadlock found"}
			}
			return &domain.Order{ID: 3}, nil
		},
	}

	uc := NewCreateOrderUseCase(svc, zap.NewNop(), 3)

	order, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint(3), order.ID)
	assert.Equal(t, 2, calls)
}

func TestCreateOrder_ExhaustedRetriesReturnLastError(t *testing.T) {
	calls := 0
	svc := &mockCreationService{
		CreateFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
			calls++
			return nil, apperrors.NewDuplicateError("order number already exists", nil)
		},
	}

	uc := NewCreateOrderUseCase(svc, zap.NewNop(), 3)

	order, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{})
	assert.Nil(t, order)
	assert.Equal(t, 3, calls)

	_, ok := apperrors.IsDuplicateError(err)
	assert.True(t, ok)
}

func TestCreateOrder_NonRetryableErrorReturnsImmediately(t *testing.T) {
	calls := 0
	svc := &mockCreationService{
		CreateFunc: func(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
			calls++
			return nil, apperrors.NewNotFoundError("product with id 9 not found")
		},
	}

	uc := NewCreateOrderUseCase(svc, zap.NewNop(), 3)

	order, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{})
	assert.Nil(t, order)
	assert.Equal(t, 1, calls)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
