package importer

import (
	"fmt"
	"strings"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// ValidationIssue describes one problem found in a catalog file.
type ValidationIssue struct {
	Path    string // e.g. "locations[2].zone"
	Message string
}

func (v ValidationIssue) String() string {
	return v.Path + ": " + v.Message
}

// Validate checks a parsed catalog for structural problems. Returns all
// issues found rather than stopping at the first.
func Validate(c *Catalog) []ValidationIssue {
	var issues []ValidationIssue

	if len(c.Locations) == 0 {
		issues = append(issues, ValidationIssue{Path: "locations", Message: "catalog must contain at least one location"})
	}

	seenLocations := make(map[string]bool)
	for i, loc := range c.Locations {
		path := fmt.Sprintf("locations[%d]", i)
		if strings.TrimSpace(loc.ID) == "" {
			issues = append(issues, ValidationIssue{Path: path + ".id", Message: "must not be empty"})
		} else if seenLocations[loc.ID] {
			issues = append(issues, ValidationIssue{Path: path + ".id", Message: fmt.Sprintf("duplicate location id %q", loc.ID)})
		}
		seenLocations[loc.ID] = true

		if strings.TrimSpace(loc.Name) == "" {
			issues = append(issues, ValidationIssue{Path: path + ".name", Message: "must not be empty"})
		}
		if _, ok := domain.ParseZoneType(loc.Zone); !ok {
			issues = append(issues, ValidationIssue{Path: path + ".zone", Message: fmt.Sprintf("unknown zone type %q", loc.Zone)})
		}
		if loc.TrafficIndex < 0 {
			issues = append(issues, ValidationIssue{Path: path + ".traffic_index", Message: "must be >= 0"})
		}
		if loc.MonthlyCost < 0 {
			issues = append(issues, ValidationIssue{Path: path + ".monthly_cost", Message: "must be >= 0"})
		}
		for j, a := range loc.Affinities {
			if _, ok := domain.ParseCategory(a); !ok {
				issues = append(issues, ValidationIssue{
					Path:    fmt.Sprintf("%s.affinities[%d]", path, j),
					Message: fmt.Sprintf("unknown category %q", a),
				})
			}
		}
	}

	seenCategories := make(map[string]bool)
	for i, cat := range c.Categories {
		path := fmt.Sprintf("categories[%d]", i)
		parsed, ok := domain.ParseCategory(cat.Category)
		if !ok {
			issues = append(issues, ValidationIssue{Path: path + ".category", Message: fmt.Sprintf("unknown category %q", cat.Category)})
			continue
		}
		if seenCategories[string(parsed)] {
			issues = append(issues, ValidationIssue{Path: path + ".category", Message: fmt.Sprintf("duplicate category %q", cat.Category)})
		}
		seenCategories[string(parsed)] = true

		if cat.ConversionRate <= 0 || cat.ConversionRate > 1 {
			issues = append(issues, ValidationIssue{Path: path + ".conversion_rate", Message: "must be in (0, 1]"})
		}
		if cat.AvgBasketValue < 0 {
			issues = append(issues, ValidationIssue{Path: path + ".avg_basket_value", Message: "must be >= 0"})
		}
	}

	for i, comp := range c.Competitors {
		path := fmt.Sprintf("competitors[%d]", i)
		if _, ok := domain.ParseCategory(comp.Category); !ok {
			issues = append(issues, ValidationIssue{Path: path + ".category", Message: fmt.Sprintf("unknown category %q", comp.Category)})
		}
		if !seenLocations[comp.LocationID] {
			issues = append(issues, ValidationIssue{Path: path + ".location_id", Message: fmt.Sprintf("unknown location %q", comp.LocationID)})
		}
		if comp.Price <= 0 {
			issues = append(issues, ValidationIssue{Path: path + ".price", Message: "must be > 0"})
		}
		if comp.ObservedROI < 0 {
			issues = append(issues, ValidationIssue{Path: path + ".observed_roi", Message: "must be >= 0"})
		}
	}

	for i, row := range c.Sales {
		path := fmt.Sprintf("sales[%d]", i)
		if _, ok := domain.ParseCategory(row.Category); !ok {
			issues = append(issues, ValidationIssue{Path: path + ".category", Message: fmt.Sprintf("unknown category %q", row.Category)})
		}
		if _, ok := domain.ParseZoneType(row.Zone); !ok {
			issues = append(issues, ValidationIssue{Path: path + ".zone", Message: fmt.Sprintf("unknown zone type %q", row.Zone)})
		}
		if row.UnitsSold < 0 {
			issues = append(issues, ValidationIssue{Path: path + ".units_sold", Message: "must be >= 0"})
		}
	}

	return issues
}
