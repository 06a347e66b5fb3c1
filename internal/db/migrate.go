package db

import (
	"database/sql"
	"fmt"
)

// migrations are ordered DDL statements; each must be idempotent since the
// migration system re-runs all statements on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS locations (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		zone          TEXT NOT NULL,
		traffic_index REAL NOT NULL DEFAULT 0,
		visibility    REAL NOT NULL DEFAULT 0,
		monthly_cost  REAL NOT NULL DEFAULT 0,
		affinities    TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS categories (
		category         TEXT PRIMARY KEY,
		conversion_rate  REAL NOT NULL DEFAULT 0,
		avg_basket_value REAL NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS zone_lifts (
		category    TEXT NOT NULL REFERENCES categories(category) ON DELETE CASCADE,
		zone        TEXT NOT NULL,
		lift        REAL NOT NULL DEFAULT 1,
		sample_size INTEGER NOT NULL DEFAULT 0,
		variance    REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (category, zone)
	)`,

	`CREATE TABLE IF NOT EXISTS competitor_products (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		category     TEXT NOT NULL,
		location_id  TEXT NOT NULL REFERENCES locations(id) ON DELETE CASCADE,
		product_name TEXT NOT NULL,
		price        REAL NOT NULL,
		observed_roi REAL NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_competitor_slot
		ON competitor_products(category, location_id)`,

	`CREATE TABLE IF NOT EXISTS sales_history (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		location_id TEXT NOT NULL,
		category    TEXT NOT NULL,
		zone        TEXT NOT NULL,
		units_sold  INTEGER NOT NULL,
		sold_on     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sales_category_zone
		ON sales_history(category, zone)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
