package domain

// ZoneStats holds the historically observed lift of one zone type for a
// category, with the sample data that produced it.
type ZoneStats struct {
	Lift       float64 // zone mean units sold / category baseline, 1.0 = no lift
	SampleSize int     // transactions behind the estimate
	Variance   float64 // variance of units sold within the zone sample
}

// CategoryLift carries the precomputed historical aggregates for one
// category. The scoring engine looks these up; it never recomputes them.
type CategoryLift struct {
	Category       Category
	ConversionRate float64 // share of passing traffic that buys, per day
	AvgBasketValue float64 // dollars
	Zones          map[ZoneType]ZoneStats
}

// ZoneLift returns the lift stats for a zone. Zones with no historical
// samples report a neutral lift of 1.0 and a zero sample size.
func (c CategoryLift) ZoneLift(z ZoneType) ZoneStats {
	if s, ok := c.Zones[z]; ok && s.SampleSize > 0 {
		return s
	}
	return ZoneStats{Lift: 1.0}
}

// CompetitorStats is the benchmark of competitor products observed for a
// category at one location.
type CompetitorStats struct {
	Category       Category
	LocationID     string
	AvgPrice       float64 // dollars
	AvgObservedROI float64 // ratio, 1.0 = break-even
	SampleSize     int
}
