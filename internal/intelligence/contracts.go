package intelligence

import (
	"github.com/shelfwise/shelfwise/internal/contract"
)

// validIntents is the closed set of follow-up intents.
var validIntents = map[contract.DefendIntent]bool{
	contract.IntentCompareLocations:   true,
	contract.IntentBudgetSensitivity:  true,
	contract.IntentCompetitorInquiry:  true,
	contract.IntentConfidenceInquiry:  true,
	contract.IntentGeneralExplanation: true,
}

// IsValidIntent returns true if the given name is a known defend intent.
func IsValidIntent(name contract.DefendIntent) bool {
	return validIntents[name]
}

// ClassifiedIntent is the resolved meaning of one follow-up question.
// LocationA and LocationB are location IDs from the session; LocationB is
// set only for comparisons.
type ClassifiedIntent struct {
	Intent     contract.DefendIntent `json:"intent"`
	LocationA  string                `json:"location_a,omitempty"`
	LocationB  string                `json:"location_b,omitempty"`
	Confidence float64               `json:"confidence"`
}

// llmIntent is the JSON shape the classification task must emit.
type llmIntent struct {
	Intent     string  `json:"intent"`
	LocationA  string  `json:"location_a,omitempty"`
	LocationB  string  `json:"location_b,omitempty"`
	Confidence float64 `json:"confidence"`
}

// llmAnswer is the JSON shape the defend drafting task must emit. Only the
// phrasing comes from the model; every number it uses has to match a fact.
type llmAnswer struct {
	Summary string `json:"summary"`
}
