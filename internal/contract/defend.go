package contract

// DefendIntent names the closed taxonomy of follow-up question intents.
type DefendIntent string

const (
	IntentCompareLocations   DefendIntent = "compare_locations"
	IntentBudgetSensitivity  DefendIntent = "budget_sensitivity"
	IntentCompetitorInquiry  DefendIntent = "competitor_inquiry"
	IntentConfidenceInquiry  DefendIntent = "confidence_inquiry"
	IntentGeneralExplanation DefendIntent = "general_explanation"
)

// Fact is one numeric claim an answer cites, traceable to the session's
// stored prediction breakdowns.
type Fact struct {
	Key   string // evidence key within the session trace
	Label string // human-readable description
	Value float64
}

// DefendResponse is the caller-facing answer to one follow-up question.
// Summary may come from the text-generation capability or the
// deterministic template; Facts are identical on both paths.
type DefendResponse struct {
	SessionID    string
	Intent       DefendIntent
	Summary      string
	Facts        []Fact
	Generated    bool  // true when the summary was phrased by the LLM
	Interactions int64 // counter value after this call
}
