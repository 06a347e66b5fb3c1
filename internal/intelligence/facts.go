package intelligence

import (
	"fmt"

	"github.com/shelfwise/shelfwise/internal/contract"
	"github.com/shelfwise/shelfwise/internal/domain"
)

// BuildFacts derives the numeric claims an answer to this intent may cite.
// Facts come straight from the stored session; the scoring engine is never
// re-run here.
func BuildFacts(intent ClassifiedIntent, session *domain.AnalysisSession) []contract.Fact {
	switch intent.Intent {
	case contract.IntentCompareLocations:
		return compareFacts(intent, session)
	case contract.IntentBudgetSensitivity:
		return budgetFacts(session)
	case contract.IntentCompetitorInquiry:
		return competitorFacts(intent, session)
	case contract.IntentConfidenceInquiry:
		return confidenceFacts(intent, session)
	default:
		return generalFacts(session)
	}
}

func compareFacts(intent ClassifiedIntent, session *domain.AnalysisSession) []contract.Fact {
	var facts []contract.Fact
	for _, id := range []string{intent.LocationA, intent.LocationB} {
		if id == "" {
			continue
		}
		if p, ok := session.Prediction(id); ok {
			facts = append(facts, predictionFacts(p)...)
			continue
		}
		// Comparisons against a budget-excluded location stay answerable.
		for _, e := range session.Excluded {
			if e.LocationID == id {
				facts = append(facts,
					fact("excl."+e.LocationID+".monthly_cost", e.LocationName+" monthly cost", e.MonthlyCost),
					fact("request.budget", "monthly budget", session.Request.Budget),
				)
			}
		}
	}
	return facts
}

func budgetFacts(session *domain.AnalysisSession) []contract.Fact {
	facts := []contract.Fact{
		fact("request.budget", "monthly budget", session.Request.Budget),
		fact("excluded.count", "locations over budget", float64(len(session.Excluded))),
	}

	if cheapest := cheapestExclusion(session); cheapest != nil {
		facts = append(facts,
			fact("excl."+cheapest.LocationID+".monthly_cost", cheapest.LocationName+" monthly cost", cheapest.MonthlyCost),
			fact("budget.shortfall", "extra budget needed for "+cheapest.LocationName, cheapest.MonthlyCost-session.Request.Budget),
		)
	}

	if top := session.Top(); top != nil {
		facts = append(facts,
			fact("pred."+top.LocationID+".roi", top.LocationName+" predicted ROI", top.ROI),
			fact("pred."+top.LocationID+".monthly_cost", top.LocationName+" monthly cost", top.MonthlyCost),
		)
	}
	return facts
}

func competitorFacts(intent ClassifiedIntent, session *domain.AnalysisSession) []contract.Fact {
	target := resolveTarget(intent.LocationA, session)
	if target == nil {
		return generalFacts(session)
	}

	facts := []contract.Fact{
		fact("pred."+target.LocationID+".roi", target.LocationName+" predicted ROI", target.ROI),
		fact("pred."+target.LocationID+".competitor_adj", target.LocationName+" competitor adjustment", target.Breakdown.CompetitorAdj),
		fact("request.unit_price", "product unit price", session.Request.UnitPrice),
	}
	return facts
}

func confidenceFacts(intent ClassifiedIntent, session *domain.AnalysisSession) []contract.Fact {
	target := resolveTarget(intent.LocationA, session)
	if target == nil {
		return generalFacts(session)
	}

	prefix := "pred." + target.LocationID
	return []contract.Fact{
		fact(prefix+".roi", target.LocationName+" predicted ROI", target.ROI),
		fact(prefix+".interval_lower", target.LocationName+" interval lower bound", target.Interval.Lower),
		fact(prefix+".interval_upper", target.LocationName+" interval upper bound", target.Interval.Upper),
		fact(prefix+".interval_level", "confidence level", target.Interval.Level),
		fact(prefix+".sample_size", target.LocationName+" historical samples", float64(target.Breakdown.SampleSize)),
	}
}

func generalFacts(session *domain.AnalysisSession) []contract.Fact {
	top := session.Top()
	if top == nil {
		facts := []contract.Fact{
			fact("request.budget", "monthly budget", session.Request.Budget),
			fact("excluded.count", "locations over budget", float64(len(session.Excluded))),
		}
		if cheapest := cheapestExclusion(session); cheapest != nil {
			facts = append(facts, fact("excl."+cheapest.LocationID+".monthly_cost", cheapest.LocationName+" monthly cost", cheapest.MonthlyCost))
		}
		return facts
	}

	prefix := "pred." + top.LocationID
	return append(predictionFacts(top),
		fact(prefix+".margin_ratio", top.LocationName+" margin ratio", top.Breakdown.MarginRatio),
		fact(prefix+".traffic_factor", top.LocationName+" traffic factor", top.Breakdown.TrafficFactor),
		fact(prefix+".fit_penalty", top.LocationName+" category fit factor", top.Breakdown.FitPenalty),
		fact(prefix+".competitor_adj", top.LocationName+" competitor adjustment", top.Breakdown.CompetitorAdj),
	)
}

// predictionFacts is the common per-location fact set.
func predictionFacts(p *domain.ROIPrediction) []contract.Fact {
	prefix := "pred." + p.LocationID
	return []contract.Fact{
		fact(prefix+".roi", p.LocationName+" predicted ROI", p.ROI),
		fact(prefix+".monthly_cost", p.LocationName+" monthly cost", p.MonthlyCost),
		fact(prefix+".traffic_index", p.LocationName+" traffic index", p.TrafficIndex),
		fact(prefix+".category_lift", p.LocationName+" category lift", p.Breakdown.CategoryLift),
		fact(prefix+".visibility", p.LocationName+" visibility", p.Breakdown.Visibility),
	}
}

// resolveTarget picks the named location, or the top recommendation when
// the question did not name one.
func resolveTarget(id string, session *domain.AnalysisSession) *domain.ROIPrediction {
	if id != "" {
		if p, ok := session.Prediction(id); ok {
			return p
		}
	}
	return session.Top()
}

func cheapestExclusion(session *domain.AnalysisSession) *domain.BudgetExclusion {
	var cheapest *domain.BudgetExclusion
	for i := range session.Excluded {
		e := &session.Excluded[i]
		if cheapest == nil || e.MonthlyCost < cheapest.MonthlyCost {
			cheapest = e
		}
	}
	return cheapest
}

func fact(key, label string, value float64) contract.Fact {
	return contract.Fact{Key: key, Label: label, Value: value}
}

// FactKeys returns the set of evidence keys present in a fact list.
func FactKeys(facts []contract.Fact) map[string]bool {
	keys := make(map[string]bool, len(facts))
	for _, f := range facts {
		keys[f.Key] = true
	}
	return keys
}

// FormatFact renders one fact the way the fallback templates cite it.
func FormatFact(f contract.Fact) string {
	return fmt.Sprintf("%s: %s", f.Label, formatValue(f.Value))
}
