package domain

// ConfidenceInterval is a two-sided interval around an ROI point estimate.
// Invariant: Lower <= point estimate <= Upper.
type ConfidenceInterval struct {
	Lower float64
	Upper float64
	Level float64 // e.g. 0.80 for an 80% interval
}

// FactorBreakdown records every multiplicative factor that produced an ROI
// estimate. The defend engine cites these verbatim; they are mandatory on
// every prediction.
type FactorBreakdown struct {
	MarginRatio    float64 // unit economics vs placement cost
	TrafficFactor  float64 // share of target sales reachable from traffic
	Visibility     float64 // zone visibility multiplier
	CategoryLift   float64 // historical zone lift for the category
	FitPenalty     float64 // 1.0, or the discount for off-affinity placement
	CompetitorAdj  float64 // signed adjustment applied, within [-0.30, 0.30]
	SampleSize     int     // historical samples behind the lift estimate
	LowConfidence  bool    // set when the sample was too small to trust
	OffAffinity    bool    // category not in the location's affinity set
	HasCompetitors bool    // competitor benchmark existed for this slot
}

// ROIPrediction is the scored outcome for one candidate location.
type ROIPrediction struct {
	LocationID   string
	LocationName string
	Zone         ZoneType
	TrafficIndex float64
	ROI          float64 // point estimate, 1.85 = 185% of spend returned
	Interval     ConfidenceInterval
	MonthlyCost  float64
	Breakdown    FactorBreakdown
}

// BudgetExclusion records a location cut by the budget filter before
// scoring. Kept so follow-up questions about budget stay answerable.
type BudgetExclusion struct {
	LocationID   string
	LocationName string
	MonthlyCost  float64
}
