package formatter

import (
	"fmt"
	"strings"

	"github.com/shelfwise/shelfwise/internal/contract"
)

// intentLabels maps intents to display names.
var intentLabels = map[contract.DefendIntent]string{
	contract.IntentCompareLocations:   "Comparison",
	contract.IntentBudgetSensitivity:  "Budget",
	contract.IntentCompetitorInquiry:  "Competitors",
	contract.IntentConfidenceInquiry:  "Confidence",
	contract.IntentGeneralExplanation: "Explanation",
}

// FormatDefend formats a DefendResponse with its supporting facts.
func FormatDefend(resp *contract.DefendResponse) string {
	var b strings.Builder

	label := intentLabels[resp.Intent]
	if label == "" {
		label = string(resp.Intent)
	}
	source := "template"
	if resp.Generated {
		source = "generated"
	}
	b.WriteString(StylePurple.Render(fmt.Sprintf("%s (%s)", strings.ToUpper(label), source)))
	b.WriteString("\n\n")

	b.WriteString(StyleFg.Render(resp.Summary))
	b.WriteString("\n")

	if len(resp.Facts) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim("Backed by:") + "\n")
		for _, f := range resp.Facts {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				Dim(f.Label+":"),
				StyleBlue.Render(trimFloat(f.Value)),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Question #%d in session %s", resp.Interactions, resp.SessionID)) + "\n")

	return RenderBox("Defend", b.String())
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
