package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// schema creates the tables of the service. Order rows own their dish
// associations (cascade), while dishes cannot be deleted while an order
// still references them (restrict).
var schema = []string{
	`CREATE TABLE IF NOT EXISTS dishes (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(100) NOT NULL,
		description VARCHAR(500),
		price       NUMERIC(10, 2) NOT NULL CHECK (price > 0),
		category    VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id            BIGSERIAL PRIMARY KEY,
		customer_name VARCHAR(100) NOT NULL,
		order_time    TIMESTAMPTZ NOT NULL DEFAULT now(),
		status        SMALLINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)`,
	`CREATE TABLE IF NOT EXISTS order_dish (
		order_id BIGINT NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
		dish_id  BIGINT NOT NULL REFERENCES dishes (id) ON DELETE RESTRICT,
		PRIMARY KEY (order_id, dish_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_order_dish_dish_id ON order_dish (dish_id)`,
}

// Migrate creates the schema if it does not exist. It is idempotent and runs
// in a single transaction.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, stmt := range schema {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("migration step %d: %w", i+1, err)
			}
		}
		return nil
	})
}
