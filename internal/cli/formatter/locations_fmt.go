package formatter

import (
	"fmt"
	"strings"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// FormatLocations renders the placement catalog as a table.
func FormatLocations(locations []domain.LocationProfile) string {
	if len(locations) == 0 {
		return RenderBox("Locations", Dim("No locations in the catalog. Run: shelfwise seed"))
	}

	headers := []string{"ID", "NAME", "ZONE", "TRAFFIC", "COST/MO", "CATEGORIES"}
	rows := make([][]string, 0, len(locations))
	for _, loc := range locations {
		affinities := make([]string, 0, len(loc.Affinities))
		for _, a := range loc.Affinities {
			affinities = append(affinities, a.Display())
		}
		rows = append(rows, []string{
			Dim(loc.ID),
			StyleFg.Render(loc.Name),
			loc.Zone.Display(),
			fmt.Sprintf("%.0f", loc.TrafficIndex),
			Money(loc.MonthlyCost),
			Dim(strings.Join(affinities, ", ")),
		})
	}

	return RenderBox("Locations", RenderTable(headers, rows))
}
