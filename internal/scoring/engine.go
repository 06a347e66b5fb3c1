package scoring

import (
	"math"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// Tunable constants of the ROI model. Gross margin and days-per-month are
// the standard retail planning assumptions; the fit penalty discounts
// off-affinity placements without excluding them.
const (
	grossMargin   = 0.40
	daysPerMonth  = 30.0
	fitPenalty    = 0.85
	competitorCap = 0.30 // total competitor adjustment clamps to +/-30%
	costFloor     = 1.0  // keeps the margin ratio finite for free placements
	minROI        = 0.0
)

// Result is the complete outcome of scoring one request against the
// location catalog. A result with no ranked predictions is a normal
// "no affordable placement" outcome, not an error.
type Result struct {
	Ranked   []domain.ROIPrediction
	Excluded []domain.BudgetExclusion
}

// Empty reports whether no location survived the budget filter.
func (r Result) Empty() bool {
	return len(r.Ranked) == 0
}

// TopN returns up to n leading predictions without copying the tail.
func (r Result) TopN(n int) []domain.ROIPrediction {
	if n <= 0 || n > len(r.Ranked) {
		n = len(r.Ranked)
	}
	return r.Ranked[:n]
}

// Score produces the ranked ROI predictions for a request. It is a pure
// function over its inputs: no I/O, no clock, no randomness, so identical
// inputs always yield identical scores. competitors is keyed by location ID
// and holds benchmarks for the request's category only.
func Score(
	req domain.ProductRequest,
	locations []domain.LocationProfile,
	lift domain.CategoryLift,
	competitors map[string]domain.CompetitorStats,
) Result {
	var result Result

	for _, loc := range locations {
		if loc.MonthlyCost > req.Budget {
			result.Excluded = append(result.Excluded, domain.BudgetExclusion{
				LocationID:   loc.ID,
				LocationName: loc.Name,
				MonthlyCost:  loc.MonthlyCost,
			})
			continue
		}

		var comp *domain.CompetitorStats
		if c, ok := competitors[loc.ID]; ok {
			comp = &c
		}
		result.Ranked = append(result.Ranked, scoreLocation(req, loc, lift, comp))
	}

	CanonicalSort(result.Ranked)
	return result
}

// scoreLocation computes one prediction. The formula is multiplicative
// across independent factors, each recorded in the breakdown so defend
// answers can cite them verbatim.
func scoreLocation(
	req domain.ProductRequest,
	loc domain.LocationProfile,
	lift domain.CategoryLift,
	comp *domain.CompetitorStats,
) domain.ROIPrediction {
	zone := lift.ZoneLift(loc.Zone)

	breakdown := domain.FactorBreakdown{
		MarginRatio:   marginRatio(req, loc),
		TrafficFactor: trafficFactor(req, loc, lift),
		Visibility:    loc.EffectiveVisibility(),
		CategoryLift:  zone.Lift,
		FitPenalty:    1.0,
		SampleSize:    zone.SampleSize,
	}
	if !loc.ServesCategory(req.Category) {
		breakdown.FitPenalty = fitPenalty
		breakdown.OffAffinity = true
	}

	roi := breakdown.MarginRatio *
		breakdown.TrafficFactor *
		breakdown.Visibility *
		breakdown.CategoryLift *
		breakdown.FitPenalty

	if comp != nil && comp.SampleSize > 0 {
		breakdown.HasCompetitors = true
		breakdown.CompetitorAdj = competitorAdjustment(req, *comp)
		roi *= 1 + breakdown.CompetitorAdj
	}

	if roi < minROI {
		roi = minROI
	}

	interval, lowConfidence := confidenceInterval(roi, zone)
	breakdown.LowConfidence = lowConfidence

	return domain.ROIPrediction{
		LocationID:   loc.ID,
		LocationName: loc.Name,
		Zone:         loc.Zone,
		TrafficIndex: loc.TrafficIndex,
		ROI:          roi,
		Interval:     interval,
		MonthlyCost:  loc.MonthlyCost,
		Breakdown:    breakdown,
	}
}

// marginRatio is the unit-economics component: gross margin dollars on the
// monthly sales target relative to the placement cost.
func marginRatio(req domain.ProductRequest, loc domain.LocationProfile) float64 {
	cost := loc.MonthlyCost
	if cost < costFloor {
		cost = costFloor
	}
	return req.UnitPrice * grossMargin * float64(req.TargetMonthlySales) / cost
}

// trafficFactor is the share of the sales target reachable from the
// location's traffic at the category's historical conversion rate,
// capped at 1: extra foot traffic cannot sell units beyond the target.
func trafficFactor(req domain.ProductRequest, loc domain.LocationProfile, lift domain.CategoryLift) float64 {
	if req.TargetMonthlySales == 0 {
		return 1.0
	}
	reachable := loc.TrafficIndex * lift.ConversionRate * daysPerMonth
	factor := reachable / float64(req.TargetMonthlySales)
	return math.Min(1.0, factor)
}

// competitorAdjustment scales the estimate by the product's relative
// price/value position against the slot's competitor benchmark. A cheaper
// price than the competitor average and an above-break-even competitor ROI
// both nudge the estimate up. Clamped to avoid runaway compounding.
func competitorAdjustment(req domain.ProductRequest, comp domain.CompetitorStats) float64 {
	pricePosition := 0.0
	if req.UnitPrice > 0 {
		pricePosition = comp.AvgPrice/req.UnitPrice - 1
	}
	roiSignal := comp.AvgObservedROI - 1

	adj := 0.5*pricePosition + 0.5*roiSignal
	if adj > competitorCap {
		adj = competitorCap
	}
	if adj < -competitorCap {
		adj = -competitorCap
	}
	return adj
}
