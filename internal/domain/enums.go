package domain

import "strings"

// Category is a product category from the fixed retail taxonomy.
type Category string

const (
	CategoryBeverages    Category = "beverages"
	CategorySnacks       Category = "snacks"
	CategoryDairy        Category = "dairy"
	CategoryBakery       Category = "bakery"
	CategoryPersonalCare Category = "personal_care"
	CategoryHousehold    Category = "household"
	CategoryFrozen       Category = "frozen"
)

// validCategories is the canonical set of accepted categories.
var validCategories = map[Category]bool{
	CategoryBeverages: true, CategorySnacks: true, CategoryDairy: true,
	CategoryBakery: true, CategoryPersonalCare: true,
	CategoryHousehold: true, CategoryFrozen: true,
}

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{
		CategoryBeverages, CategorySnacks, CategoryDairy, CategoryBakery,
		CategoryPersonalCare, CategoryHousehold, CategoryFrozen,
	}
}

// ParseCategory normalizes free-form category input ("Personal Care",
// "beverages") to a known Category. It never defaults: unknown input
// returns ok=false.
func ParseCategory(s string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	c := Category(normalized)
	if validCategories[c] {
		return c, true
	}
	return "", false
}

// Display returns a human-readable form such as "Personal Care".
func (c Category) Display() string {
	parts := strings.Split(string(c), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// ZoneType is a location's structural category on the store floor.
type ZoneType string

const (
	ZoneEntrance      ZoneType = "entrance"
	ZoneEndCap        ZoneType = "end_cap"
	ZoneEyeLevel      ZoneType = "eye_level"
	ZoneCheckout      ZoneType = "checkout"
	ZoneLowShelf      ZoneType = "low_shelf"
	ZoneCategoryAisle ZoneType = "category_aisle"
)

// validZones is the canonical set of accepted zone type strings.
var validZones = map[ZoneType]bool{
	ZoneEntrance: true, ZoneEndCap: true, ZoneEyeLevel: true,
	ZoneCheckout: true, ZoneLowShelf: true, ZoneCategoryAisle: true,
}

// ParseZoneType normalizes free-form zone input ("End Cap", "endcap",
// "eye-level") to a known ZoneType.
func ParseZoneType(s string) (ZoneType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")
	switch normalized {
	case "endcap":
		normalized = "end_cap"
	case "eyelevel":
		normalized = "eye_level"
	case "lowshelf":
		normalized = "low_shelf"
	case "aisle", "categoryaisle":
		normalized = "category_aisle"
	}
	z := ZoneType(normalized)
	if validZones[z] {
		return z, true
	}
	return "", false
}

// Display returns a human-readable form such as "End Cap".
func (z ZoneType) Display() string {
	parts := strings.Split(string(z), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// VisibilityForZone returns the default visibility multiplier for a zone
// type, used when a location profile carries none of its own. Values are
// relative to a regular category-aisle shelf at 1.0.
func VisibilityForZone(z ZoneType) float64 {
	switch z {
	case ZoneEntrance:
		return 1.4
	case ZoneEndCap:
		return 1.5
	case ZoneEyeLevel:
		return 1.3
	case ZoneCheckout:
		return 1.2
	case ZoneLowShelf:
		return 0.8
	default:
		return 1.0
	}
}
