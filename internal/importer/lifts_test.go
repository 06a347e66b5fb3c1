package importer_test

import (
	"testing"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCategoryLifts_RelativeToAisleBaseline(t *testing.T) {
	c := &importer.Catalog{
		Categories: []importer.CategoryImport{
			{Category: "beverages", ConversionRate: 0.04, AvgBasketValue: 12.50},
		},
		Sales: []importer.SalesImport{
			{LocationID: "loc-a", Category: "beverages", Zone: "category_aisle", UnitsSold: 30, SoldOn: "2025-05-01"},
			{LocationID: "loc-a", Category: "beverages", Zone: "category_aisle", UnitsSold: 30, SoldOn: "2025-05-08"},
			{LocationID: "loc-b", Category: "beverages", Zone: "end_cap", UnitsSold: 45, SoldOn: "2025-05-01"},
			{LocationID: "loc-b", Category: "beverages", Zone: "end_cap", UnitsSold: 45, SoldOn: "2025-05-08"},
		},
	}

	lifts := importer.ComputeCategoryLifts(c)
	require.Len(t, lifts, 1)

	beverages := lifts[0]
	assert.Equal(t, domain.CategoryBeverages, beverages.Category)
	assert.InDelta(t, 1.0, beverages.Zones[domain.ZoneCategoryAisle].Lift, 1e-9)
	assert.InDelta(t, 1.5, beverages.Zones[domain.ZoneEndCap].Lift, 1e-9)
	assert.Equal(t, 2, beverages.Zones[domain.ZoneEndCap].SampleSize)
}

func TestComputeCategoryLifts_FallbackBaselineWithoutAisleHistory(t *testing.T) {
	c := &importer.Catalog{
		Categories: []importer.CategoryImport{
			{Category: "snacks", ConversionRate: 0.05, AvgBasketValue: 8.75},
		},
		Sales: []importer.SalesImport{
			{LocationID: "loc-a", Category: "snacks", Zone: "checkout", UnitsSold: 60, SoldOn: "2025-05-01"},
			{LocationID: "loc-b", Category: "snacks", Zone: "end_cap", UnitsSold: 40, SoldOn: "2025-05-01"},
		},
	}

	lifts := importer.ComputeCategoryLifts(c)
	require.Len(t, lifts, 1)

	// Baseline is the overall mean (50), so checkout lifts above 1 and
	// end cap falls below.
	snacks := lifts[0]
	assert.InDelta(t, 1.2, snacks.Zones[domain.ZoneCheckout].Lift, 1e-9)
	assert.InDelta(t, 0.8, snacks.Zones[domain.ZoneEndCap].Lift, 1e-9)
}

func TestComputeCategoryLifts_NoSalesLeavesZonesEmpty(t *testing.T) {
	c := &importer.Catalog{
		Categories: []importer.CategoryImport{
			{Category: "frozen", ConversionRate: 0.035, AvgBasketValue: 11.60},
		},
	}

	lifts := importer.ComputeCategoryLifts(c)
	require.Len(t, lifts, 1)
	assert.Empty(t, lifts[0].Zones)
	assert.Equal(t, 0.035, lifts[0].ConversionRate)
}

func TestComputeCategoryLifts_VarianceGrowsWithSpread(t *testing.T) {
	steady := &importer.Catalog{
		Categories: []importer.CategoryImport{{Category: "dairy", ConversionRate: 0.06, AvgBasketValue: 10.20}},
		Sales: []importer.SalesImport{
			{LocationID: "loc-a", Category: "dairy", Zone: "category_aisle", UnitsSold: 50, SoldOn: "2025-05-01"},
			{LocationID: "loc-a", Category: "dairy", Zone: "category_aisle", UnitsSold: 50, SoldOn: "2025-05-08"},
		},
	}
	noisy := &importer.Catalog{
		Categories: []importer.CategoryImport{{Category: "dairy", ConversionRate: 0.06, AvgBasketValue: 10.20}},
		Sales: []importer.SalesImport{
			{LocationID: "loc-a", Category: "dairy", Zone: "category_aisle", UnitsSold: 20, SoldOn: "2025-05-01"},
			{LocationID: "loc-a", Category: "dairy", Zone: "category_aisle", UnitsSold: 80, SoldOn: "2025-05-08"},
		},
	}

	steadyStats := importer.ComputeCategoryLifts(steady)[0].Zones[domain.ZoneCategoryAisle]
	noisyStats := importer.ComputeCategoryLifts(noisy)[0].Zones[domain.ZoneCategoryAisle]
	assert.Zero(t, steadyStats.Variance)
	assert.Greater(t, noisyStats.Variance, steadyStats.Variance)
}
