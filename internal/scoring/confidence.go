package scoring

import (
	"math"

	"github.com/shelfwise/shelfwise/internal/domain"
)

const (
	confidenceLevel = 0.80
	z80             = 1.2816 // two-sided 80% normal quantile

	// Below this many samples the interval widens instead of the
	// estimate being suppressed; the low-confidence flag rides along
	// in the breakdown.
	smallSampleSize  = 30
	smallSampleWiden = 2.0

	// Relative half-width when a zone has no history at all.
	noSampleHalfWidth = 0.25

	// Ceiling so a pathological variance cannot push the lower bound
	// below zero by an absurd margin.
	maxHalfWidth = 0.90
)

// confidenceInterval derives a two-sided interval from the variance of the
// historical samples behind the zone lift. Small samples widen the
// interval rather than suppress the estimate.
func confidenceInterval(roi float64, zone domain.ZoneStats) (domain.ConfidenceInterval, bool) {
	var relHalf float64
	lowConfidence := false

	switch {
	case zone.SampleSize == 0:
		relHalf = noSampleHalfWidth
		lowConfidence = true
	default:
		cv := 0.0
		if zone.Lift > 0 {
			cv = math.Sqrt(zone.Variance) / zone.Lift
		}
		relHalf = z80 * cv / math.Sqrt(float64(zone.SampleSize))
		if zone.SampleSize < smallSampleSize {
			relHalf *= smallSampleWiden
			lowConfidence = true
		}
	}

	if relHalf > maxHalfWidth {
		relHalf = maxHalfWidth
	}

	lower := roi * (1 - relHalf)
	if lower < 0 {
		lower = 0
	}
	upper := roi * (1 + relHalf)
	if upper < roi {
		upper = roi
	}

	return domain.ConfidenceInterval{
		Lower: lower,
		Upper: upper,
		Level: confidenceLevel,
	}, lowConfidence
}
