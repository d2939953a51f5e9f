package db

import (
	"context"
	"fmt"
)

// schemaStatements define the CRM tables. All statements are
// idempotent so Migrate can run on every startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id    BIGSERIAL PRIMARY KEY,
		name  TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id    BIGSERIAL PRIMARY KEY,
		name  TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id           BIGSERIAL PRIMARY KEY,
		customer_id  BIGINT NOT NULL REFERENCES customers(id),
		total_amount NUMERIC(12,2) NOT NULL,
		order_date   TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_products (
		order_id   BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL REFERENCES products(id),
		position   INTEGER NOT NULL,
		PRIMARY KEY (order_id, product_id)
	)`,
}

// Migrate creates the CRM tables if they do not exist yet
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
