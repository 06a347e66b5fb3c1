package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// SQLiteLiftRepo implements LiftRepo using a SQLite database.
type SQLiteLiftRepo struct {
	db *sql.DB
}

// NewSQLiteLiftRepo creates a new SQLiteLiftRepo.
func NewSQLiteLiftRepo(db *sql.DB) *SQLiteLiftRepo {
	return &SQLiteLiftRepo{db: db}
}

func (r *SQLiteLiftRepo) Upsert(ctx context.Context, lift *domain.CategoryLift) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting lift transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO categories (category, conversion_rate, avg_basket_value)
		VALUES (?, ?, ?)
		ON CONFLICT(category) DO UPDATE SET
			conversion_rate = excluded.conversion_rate,
			avg_basket_value = excluded.avg_basket_value`,
		string(lift.Category), lift.ConversionRate, lift.AvgBasketValue,
	)
	if err != nil {
		return fmt.Errorf("upserting category: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM zone_lifts WHERE category = ?`, string(lift.Category),
	); err != nil {
		return fmt.Errorf("clearing zone lifts: %w", err)
	}

	for zone, stats := range lift.Zones {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO zone_lifts (category, zone, lift, sample_size, variance)
			VALUES (?, ?, ?, ?, ?)`,
			string(lift.Category), string(zone), stats.Lift, stats.SampleSize, stats.Variance,
		)
		if err != nil {
			return fmt.Errorf("inserting zone lift: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing lift transaction: %w", err)
	}
	return nil
}

func (r *SQLiteLiftRepo) GetByCategory(ctx context.Context, c domain.Category) (*domain.CategoryLift, error) {
	lift := &domain.CategoryLift{
		Category: c,
		Zones:    make(map[domain.ZoneType]domain.ZoneStats),
	}

	err := r.db.QueryRowContext(ctx,
		`SELECT conversion_rate, avg_basket_value FROM categories WHERE category = ?`,
		string(c),
	).Scan(&lift.ConversionRate, &lift.AvgBasketValue)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category %s: %w", c, ErrNotFound)
		}
		return nil, fmt.Errorf("loading category: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT zone, lift, sample_size, variance FROM zone_lifts WHERE category = ?`,
		string(c),
	)
	if err != nil {
		return nil, fmt.Errorf("loading zone lifts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var zone string
		var stats domain.ZoneStats
		if err := rows.Scan(&zone, &stats.Lift, &stats.SampleSize, &stats.Variance); err != nil {
			return nil, fmt.Errorf("scanning zone lift: %w", err)
		}
		lift.Zones[domain.ZoneType(zone)] = stats
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating zone lifts: %w", err)
	}

	return lift, nil
}
