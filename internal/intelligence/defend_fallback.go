package intelligence

import (
	"fmt"

	"github.com/shelfwise/shelfwise/internal/contract"
	"github.com/shelfwise/shelfwise/internal/domain"
)

// TemplateAnswer builds a deterministic answer from the session alone. Used
// when text generation is disabled, unreachable, or produced a summary that
// failed numeric validation. Every number cited here appears in the fact
// set for the same intent.
func TemplateAnswer(intent ClassifiedIntent, session *domain.AnalysisSession) string {
	switch intent.Intent {
	case contract.IntentCompareLocations:
		return templateCompare(intent, session)
	case contract.IntentBudgetSensitivity:
		return templateBudget(session)
	case contract.IntentCompetitorInquiry:
		return templateCompetitor(intent, session)
	case contract.IntentConfidenceInquiry:
		return templateConfidence(intent, session)
	default:
		return templateGeneral(session)
	}
}

func templateCompare(intent ClassifiedIntent, session *domain.AnalysisSession) string {
	a, okA := session.Prediction(intent.LocationA)
	b, okB := session.Prediction(intent.LocationB)

	if okA && okB {
		lead, trail := a, b
		if b.ROI > a.ROI {
			lead, trail = b, a
		}
		return fmt.Sprintf(
			"%s ranks above %s: predicted ROI %s vs %s. %s costs %s per month with traffic index %s, against %s at %s per month with traffic index %s.",
			lead.LocationName, trail.LocationName,
			formatValue(lead.ROI), formatValue(trail.ROI),
			lead.LocationName, formatValue(lead.MonthlyCost), formatValue(lead.TrafficIndex),
			trail.LocationName, formatValue(trail.MonthlyCost), formatValue(trail.TrafficIndex),
		)
	}

	// One side was excluded by the budget filter.
	for _, id := range []string{intent.LocationA, intent.LocationB} {
		for _, e := range session.Excluded {
			if e.LocationID == id {
				return fmt.Sprintf(
					"%s was not scored: its monthly cost of %s exceeds the %s budget, so it was excluded before ranking.",
					e.LocationName, formatValue(e.MonthlyCost), formatValue(session.Request.Budget),
				)
			}
		}
	}

	return templateGeneral(session)
}

func templateBudget(session *domain.AnalysisSession) string {
	cheapest := cheapestExclusion(session)

	if session.Empty {
		if cheapest == nil {
			return fmt.Sprintf("No candidate locations were available to score against the %s budget.", formatValue(session.Request.Budget))
		}
		return fmt.Sprintf(
			"No location fits the %s monthly budget. The least expensive option, %s, costs %s per month; it would take %s more budget to bring it in range.",
			formatValue(session.Request.Budget), cheapest.LocationName,
			formatValue(cheapest.MonthlyCost), formatValue(cheapest.MonthlyCost-session.Request.Budget),
		)
	}

	top := session.Top()
	msg := fmt.Sprintf(
		"At the %s monthly budget, %s locations were excluded on cost. The top affordable pick is %s at %s per month with predicted ROI %s.",
		formatValue(session.Request.Budget), formatValue(float64(len(session.Excluded))),
		top.LocationName, formatValue(top.MonthlyCost), formatValue(top.ROI),
	)
	if cheapest != nil {
		msg += fmt.Sprintf(
			" The nearest excluded option, %s, needs %s more budget at %s per month.",
			cheapest.LocationName, formatValue(cheapest.MonthlyCost-session.Request.Budget), formatValue(cheapest.MonthlyCost),
		)
	}
	return msg
}

func templateCompetitor(intent ClassifiedIntent, session *domain.AnalysisSession) string {
	target := resolveTarget(intent.LocationA, session)
	if target == nil {
		return templateGeneral(session)
	}

	if !target.Breakdown.HasCompetitors {
		return fmt.Sprintf(
			"No competitor products were observed at %s, so its predicted ROI of %s carries no competitor adjustment.",
			target.LocationName, formatValue(target.ROI),
		)
	}

	direction := "raised"
	adj := target.Breakdown.CompetitorAdj
	if adj < 0 {
		direction = "lowered"
		adj = -adj
	}
	return fmt.Sprintf(
		"Competitor products observed at %s %s its estimate by %s. After that adjustment the predicted ROI is %s at a unit price of %s.",
		target.LocationName, direction, formatValue(adj),
		formatValue(target.ROI), formatValue(session.Request.UnitPrice),
	)
}

func templateConfidence(intent ClassifiedIntent, session *domain.AnalysisSession) string {
	target := resolveTarget(intent.LocationA, session)
	if target == nil {
		return templateGeneral(session)
	}

	msg := fmt.Sprintf(
		"The ROI estimate for %s is %s, with a %s%% interval from %s to %s based on %s historical samples.",
		target.LocationName, formatValue(target.ROI),
		formatValue(target.Interval.Level*100),
		formatValue(target.Interval.Lower), formatValue(target.Interval.Upper),
		formatValue(float64(target.Breakdown.SampleSize)),
	)
	if target.Breakdown.LowConfidence {
		msg += " The sample is small, so the interval was widened and the estimate is flagged low confidence."
	}
	return msg
}

func templateGeneral(session *domain.AnalysisSession) string {
	top := session.Top()
	if top == nil {
		return templateBudget(session)
	}

	msg := fmt.Sprintf(
		"%s leads with a predicted ROI of %s at %s per month. The estimate combines margin ratio %s, traffic factor %s, visibility %s, and category lift %s",
		top.LocationName, formatValue(top.ROI), formatValue(top.MonthlyCost),
		formatValue(top.Breakdown.MarginRatio), formatValue(top.Breakdown.TrafficFactor),
		formatValue(top.Breakdown.Visibility), formatValue(top.Breakdown.CategoryLift),
	)
	if top.Breakdown.OffAffinity {
		msg += fmt.Sprintf(", discounted by a %s category fit factor", formatValue(top.Breakdown.FitPenalty))
	}
	if top.Breakdown.HasCompetitors {
		msg += fmt.Sprintf(", with a competitor adjustment of %s", formatValue(top.Breakdown.CompetitorAdj))
	}
	return msg + "."
}
