package intelligence

import (
	"strings"

	"github.com/shelfwise/shelfwise/internal/contract"
	"github.com/shelfwise/shelfwise/internal/domain"
)

// keyword groups for the deterministic classifier. Checked in order;
// comparisons win because they are the most specific phrasing.
var (
	compareKeywords    = []string{"compare", " vs ", " vs.", "versus", "better than", "instead of", "rather than"}
	budgetKeywords     = []string{"budget", "afford", "cheaper", "expensive", "cost", "spend", "price of the slot"}
	competitorKeywords = []string{"competitor", "competition", "rival", "other brands", "other products"}
	confidenceKeywords = []string{"confiden", "how sure", "certain", "interval", "reliable", "trust", "accurate"}
)

// ClassifyIntent maps a free-text question onto the intent taxonomy using
// keyword and location-name matching against the session. It never fails;
// anything unrecognized is a general explanation request.
func ClassifyIntent(question string, session *domain.AnalysisSession) ClassifiedIntent {
	q := " " + strings.ToLower(question) + " "

	mentioned := mentionedLocations(q, session)

	if containsAny(q, compareKeywords) || len(mentioned) >= 2 {
		return classifyComparison(mentioned, session)
	}
	if containsAny(q, budgetKeywords) {
		return ClassifiedIntent{Intent: contract.IntentBudgetSensitivity, Confidence: 0.9}
	}
	if containsAny(q, competitorKeywords) {
		ci := ClassifiedIntent{Intent: contract.IntentCompetitorInquiry, Confidence: 0.9}
		if len(mentioned) > 0 {
			ci.LocationA = mentioned[0]
		}
		return ci
	}
	if containsAny(q, confidenceKeywords) {
		ci := ClassifiedIntent{Intent: contract.IntentConfidenceInquiry, Confidence: 0.9}
		if len(mentioned) > 0 {
			ci.LocationA = mentioned[0]
		}
		return ci
	}

	ci := ClassifiedIntent{Intent: contract.IntentGeneralExplanation, Confidence: 0.5}
	if len(mentioned) > 0 {
		ci.LocationA = mentioned[0]
	}
	return ci
}

// classifyComparison resolves the two sides of a comparison. A single
// named location is compared against the top recommendation; with nothing
// named there is no comparison to make.
func classifyComparison(mentioned []string, session *domain.AnalysisSession) ClassifiedIntent {
	switch {
	case len(mentioned) >= 2:
		return ClassifiedIntent{
			Intent:     contract.IntentCompareLocations,
			LocationA:  mentioned[0],
			LocationB:  mentioned[1],
			Confidence: 0.95,
		}
	case len(mentioned) == 1:
		top := session.Top()
		if top != nil && top.LocationID != mentioned[0] {
			return ClassifiedIntent{
				Intent:     contract.IntentCompareLocations,
				LocationA:  top.LocationID,
				LocationB:  mentioned[0],
				Confidence: 0.8,
			}
		}
		if len(session.Ranked) >= 2 {
			return ClassifiedIntent{
				Intent:     contract.IntentCompareLocations,
				LocationA:  session.Ranked[0].LocationID,
				LocationB:  session.Ranked[1].LocationID,
				Confidence: 0.7,
			}
		}
	}
	return ClassifiedIntent{Intent: contract.IntentGeneralExplanation, Confidence: 0.5}
}

// mentionedLocations finds session locations whose name or ID appears in
// the lowercased question, in rank order with exclusions last.
func mentionedLocations(q string, session *domain.AnalysisSession) []string {
	var ids []string
	seen := make(map[string]bool)

	add := func(id, name string) {
		if seen[id] {
			return
		}
		if strings.Contains(q, strings.ToLower(name)) || strings.Contains(q, strings.ToLower(id)) {
			ids = append(ids, id)
			seen[id] = true
		}
	}

	for _, p := range session.Ranked {
		add(p.LocationID, p.LocationName)
	}
	for _, e := range session.Excluded {
		add(e.LocationID, e.LocationName)
	}
	return ids
}

func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
