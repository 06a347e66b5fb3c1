package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelfwise/shelfwise/internal/domain"
)

func TestFormatLocations_Table(t *testing.T) {
	locs := []domain.LocationProfile{
		{
			ID: "loc-endcap-1", Name: "Aisle 3 End Cap", Zone: domain.ZoneEndCap,
			TrafficIndex: 850, Visibility: 1.5, MonthlyCost: 1200,
			Affinities: []domain.Category{domain.CategoryBeverages, domain.CategorySnacks},
		},
		{
			ID: "loc-checkout-1", Name: "Checkout Lane 2", Zone: domain.ZoneCheckout,
			TrafficIndex: 1100, Visibility: 1.2, MonthlyCost: 900,
			Affinities: []domain.Category{domain.CategorySnacks},
		},
	}

	out := FormatLocations(locs)

	assert.Contains(t, out, "LOCATIONS")
	assert.Contains(t, out, "Aisle 3 End Cap")
	assert.Contains(t, out, "End Cap")
	assert.Contains(t, out, "Checkout Lane 2")
	assert.Contains(t, out, "$1200")
	assert.Contains(t, out, "Beverages, Snacks")
}

func TestFormatLocations_EmptyCatalog(t *testing.T) {
	out := FormatLocations(nil)

	assert.Contains(t, out, "No locations in the catalog")
	assert.Contains(t, out, "shelfwise seed")
}
