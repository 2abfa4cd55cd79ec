package repository

import (
	"context"
	"database/sql"
	"fmt"

	"emporium/internal/domain"
	apperrors "emporium/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `
		SELECT id, name, sku, description, price, is_active, created_at, updated_at
		FROM products
		WHERE id = ?
	`

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.Price, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return &p, nil
}

// FindSnapshotByID resolves the name/SKU snapshot for an order item within
// the creation transaction, so the snapshot and the inserted rows see the
// same visibility.
func (r *MySQLRepository) FindSnapshotByID(ctx context.Context, tx *sql.Tx, id int) (*domain.ProductSnapshot, error) {
	query := `SELECT id, name, sku FROM products WHERE id = ?`

	var snap domain.ProductSnapshot
	err := tx.QueryRowContext(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.SKU)

	if err == sql.ErrNoRows {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product snapshot: %w", err)
	}

	return &snap, nil
}
