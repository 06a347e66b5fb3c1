package importer

import (
	"github.com/shelfwise/shelfwise/internal/domain"
)

// ComputeCategoryLifts derives per-zone lift statistics for every category
// in the catalog from its raw sales rows. The lift of a zone is the mean
// units sold there relative to the category-aisle baseline; the variance
// of the normalized samples rides along so the scoring engine can widen
// confidence intervals for thin history.
func ComputeCategoryLifts(c *Catalog) []domain.CategoryLift {
	type zoneSamples map[domain.ZoneType][]float64

	samplesByCategory := make(map[domain.Category]zoneSamples)
	for _, row := range c.Sales {
		category, ok := domain.ParseCategory(row.Category)
		if !ok {
			continue
		}
		zone, ok := domain.ParseZoneType(row.Zone)
		if !ok {
			continue
		}
		if samplesByCategory[category] == nil {
			samplesByCategory[category] = make(zoneSamples)
		}
		samplesByCategory[category][zone] = append(samplesByCategory[category][zone], float64(row.UnitsSold))
	}

	var lifts []domain.CategoryLift
	for _, cat := range c.Categories {
		category, ok := domain.ParseCategory(cat.Category)
		if !ok {
			continue
		}

		lift := domain.CategoryLift{
			Category:       category,
			ConversionRate: cat.ConversionRate,
			AvgBasketValue: cat.AvgBasketValue,
			Zones:          make(map[domain.ZoneType]domain.ZoneStats),
		}

		samples := samplesByCategory[category]
		baseline := baselineUnits(samples)
		for zone, units := range samples {
			m := mean(units)
			zoneLift := 1.0
			zoneVariance := 0.0
			if baseline > 0 {
				zoneLift = m / baseline
				// Normalize the sample variance to the baseline so it is
				// comparable across categories with different volumes.
				zoneVariance = variance(units, m) / (baseline * baseline)
			}
			lift.Zones[zone] = domain.ZoneStats{
				Lift:       zoneLift,
				SampleSize: len(units),
				Variance:   zoneVariance,
			}
		}

		lifts = append(lifts, lift)
	}
	return lifts
}

// baselineUnits is the mean units sold on a regular category-aisle shelf,
// falling back to the overall category mean when no aisle history exists.
func baselineUnits(samples map[domain.ZoneType][]float64) float64 {
	if aisle, ok := samples[domain.ZoneCategoryAisle]; ok && len(aisle) > 0 {
		return mean(aisle)
	}

	var all []float64
	for _, units := range samples {
		all = append(all, units...)
	}
	if len(all) == 0 {
		return 0
	}
	return mean(all)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func variance(xs []float64, m float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum / float64(len(xs)-1)
}
