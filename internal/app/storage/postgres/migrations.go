package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// migrationStatements is applied in order on startup. Statements are
// idempotent so reapplying on every boot is safe.
//
// Note: app_businesses.email deliberately carries no unique index. Signup
// uniqueness is a check-then-insert at the service layer, and two concurrent
// signups with the same email can both land. That race is part of the
// documented contract.
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS app_businesses (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		business_type TEXT NOT NULL,
		address TEXT NOT NULL,
		approved BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS app_pastries (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price DOUBLE PRECISION NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS app_orders (
		id TEXT PRIMARY KEY,
		business_id TEXT NOT NULL,
		items JSONB NOT NULL,
		delivery_date TEXT NOT NULL,
		delivery_time TEXT NOT NULL,
		delivery_address TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		subtotal DOUBLE PRECISION NOT NULL,
		delivery_fee DOUBLE PRECISION NOT NULL DEFAULT 0,
		total DOUBLE PRECISION NOT NULL
	)`,
}

// Apply creates the collection tables if they do not exist yet.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrationStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
