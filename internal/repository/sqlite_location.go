package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// SQLiteLocationRepo implements LocationRepo using a SQLite database.
type SQLiteLocationRepo struct {
	db *sql.DB
}

// NewSQLiteLocationRepo creates a new SQLiteLocationRepo.
func NewSQLiteLocationRepo(db *sql.DB) *SQLiteLocationRepo {
	return &SQLiteLocationRepo{db: db}
}

func (r *SQLiteLocationRepo) Upsert(ctx context.Context, l *domain.LocationProfile) error {
	query := `INSERT INTO locations (id, name, zone, traffic_index, visibility, monthly_cost, affinities)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			zone = excluded.zone,
			traffic_index = excluded.traffic_index,
			visibility = excluded.visibility,
			monthly_cost = excluded.monthly_cost,
			affinities = excluded.affinities`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		l.Name,
		string(l.Zone),
		l.TrafficIndex,
		l.Visibility,
		l.MonthlyCost,
		joinAffinities(l.Affinities),
	)
	if err != nil {
		return fmt.Errorf("upserting location: %w", err)
	}
	return nil
}

func (r *SQLiteLocationRepo) GetByID(ctx context.Context, id string) (*domain.LocationProfile, error) {
	query := `SELECT id, name, zone, traffic_index, visibility, monthly_cost, affinities
		FROM locations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanLocation(row)
}

func (r *SQLiteLocationRepo) List(ctx context.Context) ([]domain.LocationProfile, error) {
	query := `SELECT id, name, zone, traffic_index, visibility, monthly_cost, affinities
		FROM locations ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	defer rows.Close()

	var locations []domain.LocationProfile
	for rows.Next() {
		var l domain.LocationProfile
		var zone, affinities string
		if err := rows.Scan(&l.ID, &l.Name, &zone, &l.TrafficIndex, &l.Visibility, &l.MonthlyCost, &affinities); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}
		l.Zone = domain.ZoneType(zone)
		l.Affinities = splitAffinities(affinities)
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating locations: %w", err)
	}
	return locations, nil
}

func scanLocation(row *sql.Row) (*domain.LocationProfile, error) {
	var l domain.LocationProfile
	var zone, affinities string

	err := row.Scan(&l.ID, &l.Name, &zone, &l.TrafficIndex, &l.Visibility, &l.MonthlyCost, &affinities)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("location: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning location: %w", err)
	}

	l.Zone = domain.ZoneType(zone)
	l.Affinities = splitAffinities(affinities)
	return &l, nil
}

func joinAffinities(affinities []domain.Category) string {
	parts := make([]string, len(affinities))
	for i, a := range affinities {
		parts[i] = string(a)
	}
	return strings.Join(parts, ",")
}

func splitAffinities(s string) []domain.Category {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	affinities := make([]domain.Category, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		affinities = append(affinities, domain.Category(p))
	}
	return affinities
}
