package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Money formats a dollar amount without decimals for whole values.
func Money(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("$%d", int64(v))
	}
	return fmt.Sprintf("$%.2f", v)
}

// ROIValue formats an ROI multiple like "1.85x".
func ROIValue(roi float64) string {
	return fmt.Sprintf("%.2fx", roi)
}

// Interval formats a confidence interval like "[1.62, 2.08] @ 80%".
func Interval(lower, upper, level float64) string {
	return fmt.Sprintf("[%.2f, %.2f] @ %.0f%%", lower, upper, level*100)
}
