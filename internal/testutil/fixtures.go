package testutil

import "github.com/shelfwise/shelfwise/internal/domain"

// FixtureLocations returns a small location catalog shared by service and
// repository tests.
func FixtureLocations() []domain.LocationProfile {
	return []domain.LocationProfile{
		{
			ID: "loc-endcap", Name: "End Cap", Zone: domain.ZoneEndCap,
			TrafficIndex: 250, Visibility: 1.5, MonthlyCost: 1200,
			Affinities: []domain.Category{domain.CategoryBeverages, domain.CategorySnacks},
		},
		{
			ID: "loc-premium", Name: "Premium Display", Zone: domain.ZoneEntrance,
			TrafficIndex: 300, Visibility: 1.4, MonthlyCost: 6000,
			Affinities: []domain.Category{domain.CategoryBeverages},
		},
		{
			ID: "loc-checkout", Name: "Checkout Lane 3", Zone: domain.ZoneCheckout,
			TrafficIndex: 180, Visibility: 1.2, MonthlyCost: 900,
			Affinities: []domain.Category{domain.CategorySnacks, domain.CategoryPersonalCare},
		},
		{
			ID: "loc-aisle", Name: "Beverage Aisle Mid", Zone: domain.ZoneCategoryAisle,
			TrafficIndex: 120, Visibility: 1.0, MonthlyCost: 400,
			Affinities: []domain.Category{domain.CategoryBeverages},
		},
	}
}

// FixtureBeverageLift returns historical aggregates for the beverages
// category with enough samples to avoid the low-confidence path.
func FixtureBeverageLift() *domain.CategoryLift {
	return &domain.CategoryLift{
		Category:       domain.CategoryBeverages,
		ConversionRate: 0.04,
		AvgBasketValue: 12.50,
		Zones: map[domain.ZoneType]domain.ZoneStats{
			domain.ZoneEndCap:        {Lift: 1.4, SampleSize: 200, Variance: 0.04},
			domain.ZoneCheckout:      {Lift: 1.2, SampleSize: 150, Variance: 0.03},
			domain.ZoneEntrance:      {Lift: 1.3, SampleSize: 90, Variance: 0.05},
			domain.ZoneCategoryAisle: {Lift: 1.0, SampleSize: 300, Variance: 0.02},
		},
	}
}
