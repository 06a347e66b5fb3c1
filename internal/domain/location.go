package domain

// LocationProfile describes one candidate shelf location on the floor.
type LocationProfile struct {
	ID           string
	Name         string
	Zone         ZoneType
	TrafficIndex float64 // visitors passing per day, >= 0
	Visibility   float64 // multiplier relative to a regular shelf, > 0
	MonthlyCost  float64 // placement cost in dollars, >= 0
	Affinities   []Category
}

// ServesCategory reports whether the location's category affinity includes c.
func (l LocationProfile) ServesCategory(c Category) bool {
	for _, a := range l.Affinities {
		if a == c {
			return true
		}
	}
	return false
}

// EffectiveVisibility returns the profile's own multiplier, falling back
// to the zone default when unset.
func (l LocationProfile) EffectiveVisibility() float64 {
	if l.Visibility > 0 {
		return l.Visibility
	}
	return VisibilityForZone(l.Zone)
}
