package importer_test

import (
	"testing"

	"github.com/shelfwise/shelfwise/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalog() *importer.Catalog {
	return &importer.Catalog{
		Locations: []importer.LocationImport{
			{ID: "loc-1", Name: "Aisle 3 End Cap", Zone: "end_cap", TrafficIndex: 250, MonthlyCost: 1200, Affinities: []string{"beverages"}},
			{ID: "loc-2", Name: "Aisle 3 Standard Shelf", Zone: "category_aisle", TrafficIndex: 150, MonthlyCost: 400},
		},
		Categories: []importer.CategoryImport{
			{Category: "beverages", ConversionRate: 0.04, AvgBasketValue: 12.50},
		},
		Competitors: []importer.CompetitorImport{
			{Category: "beverages", LocationID: "loc-1", ProductName: "Rival Cola", Price: 2.49, ObservedROI: 1.5},
		},
		Sales: []importer.SalesImport{
			{LocationID: "loc-2", Category: "beverages", Zone: "category_aisle", UnitsSold: 30, SoldOn: "2025-05-01"},
			{LocationID: "loc-1", Category: "beverages", Zone: "end_cap", UnitsSold: 45, SoldOn: "2025-05-01"},
		},
	}
}

func TestValidate_CleanCatalog(t *testing.T) {
	assert.Empty(t, importer.Validate(validCatalog()))
}

func TestValidate_EmptyLocations(t *testing.T) {
	c := validCatalog()
	c.Locations = nil
	c.Competitors = nil

	issues := importer.Validate(c)
	require.NotEmpty(t, issues)
	assert.Equal(t, "locations", issues[0].Path)
}

func TestValidate_DuplicateLocationID(t *testing.T) {
	c := validCatalog()
	c.Locations[1].ID = "loc-1"

	issues := importer.Validate(c)
	require.Len(t, issues, 1)
	assert.Equal(t, "locations[1].id", issues[0].Path)
	assert.Contains(t, issues[0].Message, "duplicate")
}

func TestValidate_UnknownZoneAndCategory(t *testing.T) {
	c := validCatalog()
	c.Locations[0].Zone = "mezzanine"
	c.Categories[0].Category = "electronics"

	issues := importer.Validate(c)
	paths := make([]string, len(issues))
	for i, issue := range issues {
		paths[i] = issue.Path
	}
	assert.Contains(t, paths, "locations[0].zone")
	assert.Contains(t, paths, "categories[0].category")
}

func TestValidate_CompetitorUnknownLocation(t *testing.T) {
	c := validCatalog()
	c.Competitors[0].LocationID = "loc-missing"

	issues := importer.Validate(c)
	require.Len(t, issues, 1)
	assert.Equal(t, "competitors[0].location_id", issues[0].Path)
}

func TestValidate_CollectsAllIssues(t *testing.T) {
	c := validCatalog()
	c.Locations[0].Name = ""
	c.Locations[0].TrafficIndex = -5
	c.Categories[0].ConversionRate = 1.5
	c.Sales[0].UnitsSold = -1

	issues := importer.Validate(c)
	assert.Len(t, issues, 4)
}
