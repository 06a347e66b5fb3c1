package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/repository"
)

// ImportResult holds the outcome of a catalog import.
type ImportResult struct {
	LocationCount   int
	CategoryCount   int
	CompetitorCount int
	SalesRowCount   int
}

// Importer writes a validated catalog into the historical data store,
// computing category lifts from the raw sales rows on the way in.
type Importer struct {
	locations   repository.LocationRepo
	lifts       repository.LiftRepo
	competitors repository.CompetitorRepo
	sales       repository.SalesRepo
}

// NewImporter creates an Importer over the given repositories.
func NewImporter(
	locations repository.LocationRepo,
	lifts repository.LiftRepo,
	competitors repository.CompetitorRepo,
	sales repository.SalesRepo,
) *Importer {
	return &Importer{
		locations:   locations,
		lifts:       lifts,
		competitors: competitors,
		sales:       sales,
	}
}

// ImportCatalog validates and stores a catalog. Validation failures abort
// the import with a combined error before anything is written.
func (im *Importer) ImportCatalog(ctx context.Context, catalog *Catalog) (*ImportResult, error) {
	if issues := Validate(catalog); len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("invalid catalog: %s", strings.Join(msgs, "; "))
	}

	result := &ImportResult{}

	for _, loc := range catalog.Locations {
		zone, _ := domain.ParseZoneType(loc.Zone)
		profile := &domain.LocationProfile{
			ID:           loc.ID,
			Name:         loc.Name,
			Zone:         zone,
			TrafficIndex: loc.TrafficIndex,
			Visibility:   loc.Visibility,
			MonthlyCost:  loc.MonthlyCost,
		}
		if profile.Visibility <= 0 {
			profile.Visibility = domain.VisibilityForZone(zone)
		}
		for _, a := range loc.Affinities {
			category, _ := domain.ParseCategory(a)
			profile.Affinities = append(profile.Affinities, category)
		}
		if err := im.locations.Upsert(ctx, profile); err != nil {
			return nil, fmt.Errorf("storing location %s: %w", loc.ID, err)
		}
		result.LocationCount++
	}

	for _, lift := range ComputeCategoryLifts(catalog) {
		l := lift
		if err := im.lifts.Upsert(ctx, &l); err != nil {
			return nil, fmt.Errorf("storing lift for %s: %w", lift.Category, err)
		}
		result.CategoryCount++
	}

	for _, comp := range catalog.Competitors {
		category, _ := domain.ParseCategory(comp.Category)
		if err := im.competitors.Add(ctx, category, comp.LocationID, comp.ProductName, comp.Price, comp.ObservedROI); err != nil {
			return nil, fmt.Errorf("storing competitor %s: %w", comp.ProductName, err)
		}
		result.CompetitorCount++
	}

	rows := make([]repository.SalesRow, 0, len(catalog.Sales))
	for _, s := range catalog.Sales {
		category, _ := domain.ParseCategory(s.Category)
		zone, _ := domain.ParseZoneType(s.Zone)
		rows = append(rows, repository.SalesRow{
			LocationID: s.LocationID,
			Category:   category,
			Zone:       zone,
			UnitsSold:  s.UnitsSold,
			SoldOn:     s.SoldOn,
		})
	}
	if err := im.sales.InsertBatch(ctx, rows); err != nil {
		return nil, fmt.Errorf("storing sales history: %w", err)
	}
	result.SalesRowCount = len(rows)

	return result, nil
}
