package intelligence

import (
	"testing"

	"github.com/shelfwise/shelfwise/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateAnswer_Compare(t *testing.T) {
	sess := testSession()
	intent := ClassifiedIntent{
		Intent:    contract.IntentCompareLocations,
		LocationA: "loc-endcap",
		LocationB: "loc-eye",
	}

	answer := TemplateAnswer(intent, sess)

	assert.Contains(t, answer, "Aisle 3 End Cap ranks above Aisle 3 Eye Level")
	assert.Contains(t, answer, "1.85")
	assert.Contains(t, answer, "1.42")
}

func TestTemplateAnswer_CompareAgainstExcluded(t *testing.T) {
	sess := testSession()
	intent := ClassifiedIntent{
		Intent:    contract.IntentCompareLocations,
		LocationA: "loc-endcap",
		LocationB: "loc-premium",
	}

	answer := TemplateAnswer(intent, sess)

	assert.Contains(t, answer, "Premium Display")
	assert.Contains(t, answer, "6000")
	assert.Contains(t, answer, "2000")
}

func TestTemplateAnswer_BudgetWithExclusions(t *testing.T) {
	answer := TemplateAnswer(ClassifiedIntent{Intent: contract.IntentBudgetSensitivity}, testSession())

	assert.Contains(t, answer, "2000")
	assert.Contains(t, answer, "Premium Display")
	assert.Contains(t, answer, "4000") // shortfall
}

func TestTemplateAnswer_BudgetEmptyResult(t *testing.T) {
	answer := TemplateAnswer(ClassifiedIntent{Intent: contract.IntentBudgetSensitivity}, emptySession())

	assert.Contains(t, answer, "No location fits")
	assert.Contains(t, answer, "6000")
}

func TestTemplateAnswer_CompetitorWithObservations(t *testing.T) {
	answer := TemplateAnswer(ClassifiedIntent{Intent: contract.IntentCompetitorInquiry, LocationA: "loc-endcap"}, testSession())

	assert.Contains(t, answer, "raised")
	assert.Contains(t, answer, "0.08")
}

func TestTemplateAnswer_CompetitorWithoutObservations(t *testing.T) {
	answer := TemplateAnswer(ClassifiedIntent{Intent: contract.IntentCompetitorInquiry, LocationA: "loc-eye"}, testSession())

	assert.Contains(t, answer, "No competitor products")
	assert.Contains(t, answer, "1.42")
}

func TestTemplateAnswer_ConfidenceFlagsSmallSample(t *testing.T) {
	answer := TemplateAnswer(ClassifiedIntent{Intent: contract.IntentConfidenceInquiry, LocationA: "loc-eye"}, testSession())

	assert.Contains(t, answer, "1.15")
	assert.Contains(t, answer, "1.69")
	assert.Contains(t, answer, "12 historical samples")
	assert.Contains(t, answer, "low confidence")
}

func TestTemplateAnswer_General(t *testing.T) {
	answer := TemplateAnswer(ClassifiedIntent{Intent: contract.IntentGeneralExplanation}, testSession())

	assert.Contains(t, answer, "Aisle 3 End Cap leads")
	assert.Contains(t, answer, "1.85")
	assert.Contains(t, answer, "competitor adjustment")
}

func TestTemplateAnswer_NumbersAreFactBacked(t *testing.T) {
	sess := testSession()
	names := namedPhrases(sess)

	intents := []ClassifiedIntent{
		{Intent: contract.IntentCompareLocations, LocationA: "loc-endcap", LocationB: "loc-eye"},
		{Intent: contract.IntentBudgetSensitivity},
		{Intent: contract.IntentCompetitorInquiry, LocationA: "loc-endcap"},
		{Intent: contract.IntentConfidenceInquiry, LocationA: "loc-endcap"},
		{Intent: contract.IntentGeneralExplanation},
	}
	for _, intent := range intents {
		answer := TemplateAnswer(intent, sess)
		facts := BuildFacts(intent, sess)
		require.NoError(t, ValidateNumericClaims(answer, facts, names), "intent %s", intent.Intent)
	}
}
