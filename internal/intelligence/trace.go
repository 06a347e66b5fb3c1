package intelligence

import (
	"github.com/shelfwise/shelfwise/internal/domain"
)

// SessionTrace is a flattened, JSON-serializable view of the analysis data
// a session holds. Passed to the LLM as the only context it may draw on
// when phrasing an answer.
type SessionTrace struct {
	SessionID   string                `json:"session_id"`
	ProductName string                `json:"product_name"`
	Category    string                `json:"category"`
	UnitPrice   float64               `json:"unit_price"`
	Budget      float64               `json:"budget"`
	TargetSales int                   `json:"target_monthly_sales"`
	ExpectedROI float64               `json:"expected_roi"`
	Empty       bool                  `json:"empty"`
	Predictions []PredictionTraceItem `json:"predictions"`
	Excluded    []ExclusionTraceItem  `json:"excluded"`
}

// PredictionTraceItem captures one ranked location with its full scoring
// breakdown.
type PredictionTraceItem struct {
	LocationID    string  `json:"location_id"`
	LocationName  string  `json:"location_name"`
	Zone          string  `json:"zone"`
	Rank          int     `json:"rank"`
	ROI           float64 `json:"roi"`
	IntervalLower float64 `json:"interval_lower"`
	IntervalUpper float64 `json:"interval_upper"`
	MonthlyCost   float64 `json:"monthly_cost"`
	TrafficIndex  float64 `json:"traffic_index"`
	MarginRatio   float64 `json:"margin_ratio"`
	TrafficFactor float64 `json:"traffic_factor"`
	Visibility    float64 `json:"visibility"`
	CategoryLift  float64 `json:"category_lift"`
	FitPenalty    float64 `json:"fit_penalty"`
	CompetitorAdj float64 `json:"competitor_adj"`
	SampleSize    int     `json:"sample_size"`
	LowConfidence bool    `json:"low_confidence"`
}

// ExclusionTraceItem captures one location the budget filter removed.
type ExclusionTraceItem struct {
	LocationID   string  `json:"location_id"`
	LocationName string  `json:"location_name"`
	MonthlyCost  float64 `json:"monthly_cost"`
}

// BuildSessionTrace converts a stored session into a trace for the defend
// pipeline.
func BuildSessionTrace(s *domain.AnalysisSession) SessionTrace {
	trace := SessionTrace{
		SessionID:   s.ID,
		ProductName: s.Request.Name,
		Category:    string(s.Request.Category),
		UnitPrice:   s.Request.UnitPrice,
		Budget:      s.Request.Budget,
		TargetSales: s.Request.TargetMonthlySales,
		ExpectedROI: s.Request.ExpectedROI,
		Empty:       s.Empty,
	}

	for i, p := range s.Ranked {
		trace.Predictions = append(trace.Predictions, PredictionTraceItem{
			LocationID:    p.LocationID,
			LocationName:  p.LocationName,
			Zone:          string(p.Zone),
			Rank:          i + 1,
			ROI:           p.ROI,
			IntervalLower: p.Interval.Lower,
			IntervalUpper: p.Interval.Upper,
			MonthlyCost:   p.MonthlyCost,
			TrafficIndex:  p.TrafficIndex,
			MarginRatio:   p.Breakdown.MarginRatio,
			TrafficFactor: p.Breakdown.TrafficFactor,
			Visibility:    p.Breakdown.Visibility,
			CategoryLift:  p.Breakdown.CategoryLift,
			FitPenalty:    p.Breakdown.FitPenalty,
			CompetitorAdj: p.Breakdown.CompetitorAdj,
			SampleSize:    p.Breakdown.SampleSize,
			LowConfidence: p.Breakdown.LowConfidence,
		})
	}

	for _, e := range s.Excluded {
		trace.Excluded = append(trace.Excluded, ExclusionTraceItem{
			LocationID:   e.LocationID,
			LocationName: e.LocationName,
			MonthlyCost:  e.MonthlyCost,
		})
	}

	return trace
}
