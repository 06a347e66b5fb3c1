package domain

import (
	"strings"
	"time"
)

// AnalysisSession is the immutable record of one completed analysis. All
// defend answers are grounded in exactly this data; the scoring engine is
// never re-run for a follow-up. Sessions live only in process memory and
// are lost on restart by design. The defend interaction counter is owned
// by the session store, not the session, so a stored session can be read
// concurrently without synchronization.
type AnalysisSession struct {
	ID        string
	Request   ProductRequest
	Ranked    []ROIPrediction // full ranked list, not just the top-N
	Excluded  []BudgetExclusion
	Empty     bool // no location survived the budget filter
	CreatedAt time.Time
}

// Prediction returns the stored prediction for a location by ID or
// display name (case-insensitive match on either).
func (s *AnalysisSession) Prediction(idOrName string) (*ROIPrediction, bool) {
	for i := range s.Ranked {
		p := &s.Ranked[i]
		if p.LocationID == idOrName || strings.EqualFold(p.LocationName, idOrName) {
			return p, true
		}
	}
	return nil, false
}

// Top returns the highest-ranked prediction, or nil for an empty session.
func (s *AnalysisSession) Top() *ROIPrediction {
	if len(s.Ranked) == 0 {
		return nil
	}
	return &s.Ranked[0]
}
