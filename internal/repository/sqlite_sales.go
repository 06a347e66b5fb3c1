package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// SQLiteSalesRepo implements SalesRepo using a SQLite database.
type SQLiteSalesRepo struct {
	db *sql.DB
}

// NewSQLiteSalesRepo creates a new SQLiteSalesRepo.
func NewSQLiteSalesRepo(db *sql.DB) *SQLiteSalesRepo {
	return &SQLiteSalesRepo{db: db}
}

func (r *SQLiteSalesRepo) InsertBatch(ctx context.Context, rows []SalesRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting sales transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sales_history (location_id, category, zone, units_sold, sold_on)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing sales insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx,
			row.LocationID, string(row.Category), string(row.Zone), row.UnitsSold, row.SoldOn,
		); err != nil {
			return fmt.Errorf("inserting sales row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sales transaction: %w", err)
	}
	return nil
}

func (r *SQLiteSalesRepo) ListByCategory(ctx context.Context, c domain.Category) ([]SalesRow, error) {
	query := `SELECT location_id, category, zone, units_sold, sold_on
		FROM sales_history WHERE category = ? ORDER BY sold_on`
	rows, err := r.db.QueryContext(ctx, query, string(c))
	if err != nil {
		return nil, fmt.Errorf("listing sales by category: %w", err)
	}
	defer rows.Close()

	var result []SalesRow
	for rows.Next() {
		var row SalesRow
		var category, zone string
		if err := rows.Scan(&row.LocationID, &category, &zone, &row.UnitsSold, &row.SoldOn); err != nil {
			return nil, fmt.Errorf("scanning sales row: %w", err)
		}
		row.Category = domain.Category(category)
		row.Zone = domain.ZoneType(zone)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sales rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteSalesRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sales_history`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting sales rows: %w", err)
	}
	return count, nil
}
