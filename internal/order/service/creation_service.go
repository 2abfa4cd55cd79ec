package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"emporium/internal/domain"
	"emporium/internal/dto"
	apperrors "emporium/internal/errors"
)

const defaultCurrency = "USD"

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

type ProductRepository interface {
	FindSnapshotByID(ctx context.Context, tx *sql.Tx, id int) (*domain.ProductSnapshot, error)
}

// CreationService persists an order header and its line items as one
// all-or-nothing unit of work.
type CreationService struct {
	db            TransactionManager
	orderRepo     OrderRepository
	orderItemRepo OrderItemRepository
	productRepo   ProductRepository
	numbers       *OrderNumberGenerator
	logger        *zap.Logger
	txTimeout     time.Duration
}

func NewCreationService(
	db TransactionManager,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	productRepo ProductRepository,
	numbers *OrderNumberGenerator,
	logger *zap.Logger,
	txTimeout time.Duration,
) *CreationService {
	return &CreationService{
		db:            db,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		productRepo:   productRepo,
		numbers:       numbers,
		logger:        logger,
		txTimeout:     txTimeout,
	}
}

// Create runs the order-creation transaction: header insert, per-item product
// snapshot resolution, item inserts, commit, then a re-read of the committed
// order. An unresolved product id rolls everything back and surfaces as a
// not-found error naming the offending id.
func (s *CreationService) Create(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	orderNumber := s.numbers.Next()
	pricing := ComputePricing(req.Items, req.TaxAmount, req.ShippingAmount, req.DiscountAmount)

	s.logger.Info("creating order",
		zap.String("orderNumber", orderNumber),
		zap.Int64("userId", req.UserID),
		zap.Int("itemCount", len(req.Items)))

	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, nil)
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	// Ensure rollback on any exit path. MySQL ignores rollback if already committed.
	defer tx.Rollback()

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	var billingAddr *domain.Address
	if req.BillingAddress != nil {
		addr := req.BillingAddress.ToDomain()
		billingAddr = &addr
	}

	order := &domain.Order{
		UserID:          req.UserID,
		OrderNumber:     orderNumber,
		Status:          domain.OrderStatusPending,
		Subtotal:        pricing.Subtotal,
		TaxAmount:       pricing.TaxAmount,
		ShippingAmount:  pricing.ShippingAmount,
		DiscountAmount:  pricing.DiscountAmount,
		TotalAmount:     pricing.TotalAmount,
		Currency:        currency,
		PaymentStatus:   domain.PaymentStatusPending,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress.ToDomain(),
		BillingAddress:  billingAddr,
		Notes:           req.Notes,
	}

	orderID, err := s.orderRepo.Insert(txCtx, tx, order)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		snapshot, err := s.productRepo.FindSnapshotByID(txCtx, tx, item.ProductID)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				s.logger.Warn("order creation aborted, product not found",
					zap.String("orderNumber", orderNumber),
					zap.Int("productId", item.ProductID))
				return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", item.ProductID))
			}
			return nil, err
		}

		// Snapshot the agreed price, not the live product price.
		unitPrice := decimal.NewFromFloat(item.UnitPrice).Round(2)
		orderItem := domain.OrderItem{
			OrderID:     orderID,
			ProductID:   snapshot.ID,
			ProductName: snapshot.Name,
			ProductSKU:  snapshot.SKU,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}

		if _, err := s.orderItemRepo.Insert(txCtx, tx, orderItem); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit transaction", zap.String("orderNumber", orderNumber), zap.Error(err))
		return nil, err
	}

	s.logger.Info("order created",
		zap.Uint("orderId", orderID),
		zap.String("orderNumber", orderNumber),
		zap.String("totalAmount", pricing.TotalAmount.StringFixed(2)))

	return s.hydrate(ctx, orderID)
}

func (s *CreationService) hydrate(ctx context.Context, orderID uint) (*domain.Order, error) {
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
