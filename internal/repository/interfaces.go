package repository

import (
	"context"
	"errors"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// SalesRow is one historical transaction aggregate used to derive
// category lifts.
type SalesRow struct {
	LocationID string
	Category   domain.Category
	Zone       domain.ZoneType
	UnitsSold  int
	SoldOn     string // YYYY-MM-DD
}

// LocationRepo is the location catalog accessor.
type LocationRepo interface {
	Upsert(ctx context.Context, l *domain.LocationProfile) error
	GetByID(ctx context.Context, id string) (*domain.LocationProfile, error)
	List(ctx context.Context) ([]domain.LocationProfile, error)
}

// LiftRepo stores and serves precomputed per-category lift aggregates.
type LiftRepo interface {
	Upsert(ctx context.Context, lift *domain.CategoryLift) error
	GetByCategory(ctx context.Context, c domain.Category) (*domain.CategoryLift, error)
}

// CompetitorRepo records competitor observations and serves per-slot
// benchmarks. Stats returns nil (no error) when a slot has no competitors.
type CompetitorRepo interface {
	Add(ctx context.Context, category domain.Category, locationID, productName string, price, observedROI float64) error
	Stats(ctx context.Context, category domain.Category, locationID string) (*domain.CompetitorStats, error)
}

// SalesRepo stores raw transaction history for provenance and lift
// recomputation.
type SalesRepo interface {
	InsertBatch(ctx context.Context, rows []SalesRow) error
	ListByCategory(ctx context.Context, c domain.Category) ([]SalesRow, error)
	Count(ctx context.Context) (int, error)
}
