package scoring

import (
	"sort"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// CanonicalSort orders predictions by the deterministic canonical rules:
// 1. ROI point estimate: higher first
// 2. Traffic index: higher first
// 3. Location name: lexical ascending
func CanonicalSort(predictions []domain.ROIPrediction) {
	sort.SliceStable(predictions, func(i, j int) bool {
		a, b := predictions[i], predictions[j]

		if a.ROI != b.ROI {
			return a.ROI > b.ROI
		}
		if a.TrafficIndex != b.TrafficIndex {
			return a.TrafficIndex > b.TrafficIndex
		}
		return a.LocationName < b.LocationName
	})
}
