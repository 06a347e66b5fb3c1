package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// SQLiteCompetitorRepo implements CompetitorRepo using a SQLite database.
type SQLiteCompetitorRepo struct {
	db *sql.DB
}

// NewSQLiteCompetitorRepo creates a new SQLiteCompetitorRepo.
func NewSQLiteCompetitorRepo(db *sql.DB) *SQLiteCompetitorRepo {
	return &SQLiteCompetitorRepo{db: db}
}

func (r *SQLiteCompetitorRepo) Add(ctx context.Context, category domain.Category, locationID, productName string, price, observedROI float64) error {
	query := `INSERT INTO competitor_products (category, location_id, product_name, price, observed_roi)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, string(category), locationID, productName, price, observedROI)
	if err != nil {
		return fmt.Errorf("inserting competitor product: %w", err)
	}
	return nil
}

// Stats aggregates the benchmark for one category/location slot. A slot
// with no competitor observations returns (nil, nil).
func (r *SQLiteCompetitorRepo) Stats(ctx context.Context, category domain.Category, locationID string) (*domain.CompetitorStats, error) {
	query := `SELECT COUNT(*), COALESCE(AVG(price), 0), COALESCE(AVG(observed_roi), 0)
		FROM competitor_products WHERE category = ? AND location_id = ?`

	var count int
	var avgPrice, avgROI float64
	err := r.db.QueryRowContext(ctx, query, string(category), locationID).Scan(&count, &avgPrice, &avgROI)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("aggregating competitor stats: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	return &domain.CompetitorStats{
		Category:       category,
		LocationID:     locationID,
		AvgPrice:       avgPrice,
		AvgObservedROI: avgROI,
		SampleSize:     count,
	}, nil
}
