package formatter

import (
	"fmt"
	"strings"

	"github.com/shelfwise/shelfwise/internal/contract"
)

// FormatAnalyze formats an AnalyzeResponse into a styled placement report.
func FormatAnalyze(resp *contract.AnalyzeResponse) string {
	var b strings.Builder

	b.WriteString(Header("Recommended Placements"))
	b.WriteString("\n\n")

	if resp.Empty {
		b.WriteString(StyleYellow.Render("No location fits the budget."))
		b.WriteString("\n")
		b.WriteString(Dim("Every candidate slot costs more per month than the budget allows."))
		b.WriteString("\n")
	} else {
		for i, p := range resp.Predictions {
			num := fmt.Sprintf("%d.", i+1)
			titleLine := fmt.Sprintf(
				"%s %s  %s  %s",
				Bold(num),
				StyleFg.Render(p.LocationName),
				ROIStyle(p.ROI).Render(ROIValue(p.ROI)),
				ConfidenceBadge(p.Breakdown.LowConfidence),
			)
			b.WriteString(titleLine + "\n")

			b.WriteString(fmt.Sprintf("   %s\n", Dim(fmt.Sprintf(
				"Zone: %s | Cost: %s/mo | Traffic: %.0f",
				p.Zone.Display(), Money(p.MonthlyCost), p.TrafficIndex,
			))))
			b.WriteString(fmt.Sprintf("   %s %s\n",
				Dim("Interval:"),
				StyleBlue.Render(Interval(p.Interval.Lower, p.Interval.Upper, p.Interval.Level)),
			))

			if p.Breakdown.OffAffinity {
				b.WriteString(fmt.Sprintf("   %s\n", StyleYellow.Render("NOTE: category is outside this location's usual mix")))
			}
			if p.Breakdown.HasCompetitors {
				b.WriteString(fmt.Sprintf("   %s\n", Dim(fmt.Sprintf(
					"Competitor adjustment: %+.2f", p.Breakdown.CompetitorAdj,
				))))
			}

			if i < len(resp.Predictions)-1 {
				b.WriteString("\n")
			}
		}
	}

	if len(resp.Excluded) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("Excluded over budget (%d):", len(resp.Excluded))) + "\n")
		for _, e := range resp.Excluded {
			b.WriteString(Dim(fmt.Sprintf("  %s (%s/mo)", e.LocationName, Money(e.MonthlyCost))) + "\n")
		}
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range resp.Warnings {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		Dim("Session:"),
		StylePurple.Render(resp.SessionID),
	))
	b.WriteString(Dim("Ask follow-ups with: shelfwise defend "+resp.SessionID) + "\n")

	return RenderBox("Placement Analysis", b.String())
}
