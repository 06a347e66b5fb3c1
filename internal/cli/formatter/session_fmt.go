package formatter

import (
	"fmt"
	"strings"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// FormatSession renders a stored session for inspection: the originating
// request, the full ranked list, and the defend interaction count.
func FormatSession(s *domain.AnalysisSession, interactions int64) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Session:"), StylePurple.Render(s.ID)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Created:"), s.CreatedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Defend interactions:"), interactions))
	b.WriteString("\n")

	req := s.Request
	b.WriteString(Header("Request"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s (%s)\n", Dim("Product:"), StyleFg.Render(req.Name), req.Category.Display()))
	b.WriteString(fmt.Sprintf("%s %s unit, %s/mo budget\n", Dim("Economics:"), Money(req.UnitPrice), Money(req.Budget)))
	if req.TargetMonthlySales > 0 {
		b.WriteString(fmt.Sprintf("%s %d units/mo at %s expected\n",
			Dim("Target:"), req.TargetMonthlySales, ROIValue(req.ExpectedROI)))
	} else {
		b.WriteString(fmt.Sprintf("%s %s expected\n", Dim("Target:"), ROIValue(req.ExpectedROI)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Ranked Predictions"))
	b.WriteString("\n")
	if s.Empty {
		b.WriteString(StyleYellow.Render("Empty result: no location survived the budget filter.") + "\n")
	}
	for i, p := range s.Ranked {
		b.WriteString(fmt.Sprintf("%2d. %s  %s  %s  %s\n",
			i+1,
			StyleFg.Render(p.LocationName),
			ROIStyle(p.ROI).Render(ROIValue(p.ROI)),
			Dim(Interval(p.Interval.Lower, p.Interval.Upper, p.Interval.Level)),
			Dim(Money(p.MonthlyCost)+"/mo"),
		))
	}

	if len(s.Excluded) > 0 {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("Excluded over budget (%d):", len(s.Excluded))) + "\n")
		for _, e := range s.Excluded {
			b.WriteString(Dim(fmt.Sprintf("  %s (%s/mo)", e.LocationName, Money(e.MonthlyCost))) + "\n")
		}
	}

	return RenderBox("Session", b.String())
}
