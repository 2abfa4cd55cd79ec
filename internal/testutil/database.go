package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the local integration test database. Tests are skipped
// when no MySQL is reachable, so the suite stays runnable without one.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/emporium_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"order_items", "orders", "products"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by integration tests. It mirrors
// the migrations in migrations/.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createProductsTable := `
	CREATE TABLE IF NOT EXISTS products (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		sku VARCHAR(100) NOT NULL UNIQUE,
		description TEXT,
		price DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		order_number VARCHAR(50) NOT NULL UNIQUE,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		subtotal DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		tax_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		shipping_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		discount_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		total_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		currency CHAR(3) NOT NULL DEFAULT 'USD',
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		payment_method VARCHAR(30) NOT NULL,
		payment_reference VARCHAR(255),
		shipping_address JSON NOT NULL,
		billing_address JSON,
		notes TEXT,
		shipped_at DATETIME,
		delivered_at DATETIME,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_user (user_id),
		INDEX idx_status (status)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS order_items (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		order_id INT UNSIGNED NOT NULL,
		product_id INT NOT NULL,
		product_name VARCHAR(255) NOT NULL,
		product_sku VARCHAR(100) NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		unit_price DECIMAL(10,2) NOT NULL,
		total_price DECIMAL(10,2) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
		INDEX idx_order (order_id),
		INDEX idx_product (product_id)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"products", createProductsTable},
		{"orders", createOrdersTable},
		{"order_items", createOrderItemsTable},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
