package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"emporium/internal/domain"
	apperrors "emporium/internal/errors"
)

const orderColumns = `id, user_id, order_number, status,
	       subtotal, tax_amount, shipping_amount, discount_amount, total_amount,
	       currency, payment_status, payment_method, payment_reference,
	       shipping_address, billing_address, notes,
	       shipped_at, delivered_at, created_at, updated_at`

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Insert persists the order header inside the given transaction. A violation
// of the order_number unique constraint is surfaced as a retryable
// DuplicateError rather than a generic fault.
func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error) {
	shippingAddr, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return 0, fmt.Errorf("encoding shipping address: %w", err)
	}

	var billingAddr []byte
	if order.BillingAddress != nil {
		billingAddr, err = json.Marshal(order.BillingAddress)
		if err != nil {
			return 0, fmt.Errorf("encoding billing address: %w", err)
		}
	}

	query := `
		INSERT INTO orders (user_id, order_number, status,
		                    subtotal, tax_amount, shipping_amount, discount_amount, total_amount,
		                    currency, payment_status, payment_method, payment_reference,
		                    shipping_address, billing_address, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.UserID, order.OrderNumber, order.Status,
		order.Subtotal, order.TaxAmount, order.ShippingAmount, order.DiscountAmount, order.TotalAmount,
		order.Currency, order.PaymentStatus, order.PaymentMethod, order.PaymentReference,
		shippingAddr, billingAddr, order.Notes,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return 0, apperrors.NewDuplicateError(
				fmt.Sprintf("order number %s already exists", order.OrderNumber), err)
		}
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = ?`, orderColumns)

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) FindByUserID(ctx context.Context, userID int64) ([]domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE user_id = ? ORDER BY created_at DESC`, orderColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying orders by user id: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

// UpdateStatusFields applies a shipping-lifecycle transition as one write.
// Nil timestamps and notes keep the stored values; non-nil ones overwrite.
// Existence is the caller's concern (checked by the preceding lookup), so a
// zero rows-affected result is not treated as an error here.
func (r *MySQLOrderRepository) UpdateStatusFields(ctx context.Context, id uint, status string, shippedAt, deliveredAt *time.Time, notes *string) error {
	query := `
		UPDATE orders
		SET status = ?,
		    shipped_at = COALESCE(?, shipped_at),
		    delivered_at = COALESCE(?, delivered_at),
		    notes = COALESCE(?, notes),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, status, shippedAt, deliveredAt, notes, id); err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	return nil
}

// UpdatePaymentFields applies a payment-lifecycle transition as one write.
func (r *MySQLOrderRepository) UpdatePaymentFields(ctx context.Context, id uint, paymentStatus string, paymentReference, notes *string) error {
	query := `
		UPDATE orders
		SET payment_status = ?,
		    payment_reference = COALESCE(?, payment_reference),
		    notes = COALESCE(?, notes),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	if _, err := r.db.ExecContext(ctx, query, paymentStatus, paymentReference, notes, id); err != nil {
		return fmt.Errorf("updating order payment status: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var shippingAddr []byte
	var billingAddr []byte

	err := row.Scan(
		&order.ID, &order.UserID, &order.OrderNumber, &order.Status,
		&order.Subtotal, &order.TaxAmount, &order.ShippingAmount, &order.DiscountAmount, &order.TotalAmount,
		&order.Currency, &order.PaymentStatus, &order.PaymentMethod, &order.PaymentReference,
		&shippingAddr, &billingAddr, &order.Notes,
		&order.ShippedAt, &order.DeliveredAt, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(shippingAddr, &order.ShippingAddress); err != nil {
		return nil, fmt.Errorf("decoding shipping address: %w", err)
	}

	if len(billingAddr) > 0 {
		var addr domain.Address
		if err := json.Unmarshal(billingAddr, &addr); err != nil {
			return nil, fmt.Errorf("decoding billing address: %w", err)
		}
		order.BillingAddress = &addr
	}

	return &order, nil
}
