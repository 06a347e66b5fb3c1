package intelligence

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shelfwise/shelfwise/internal/contract"
	"github.com/shelfwise/shelfwise/internal/llm"
	"github.com/shelfwise/shelfwise/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLLMClient struct {
	response string
	err      error
	calls    int
}

func (m *mockLLMClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "test"}, nil
}

func (m *mockLLMClient) Available(ctx context.Context) bool { return m.err == nil }

func newDefendFixture(t *testing.T, client llm.Client, enabled bool) (DefendService, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore()
	require.NoError(t, store.Create(testSession()))
	return NewDefendService(store, client, enabled), store
}

func TestDefend_SessionNotFound(t *testing.T) {
	svc, _ := newDefendFixture(t, nil, false)

	_, err := svc.Answer(context.Background(), "no-such-session", "why?")

	var notFound *contract.SessionNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-such-session", notFound.SessionID)
}

func TestDefend_TemplateAnswerWhenDisabled(t *testing.T) {
	svc, _ := newDefendFixture(t, nil, false)

	resp, err := svc.Answer(context.Background(), "sess-1", "How confident are you?")

	require.NoError(t, err)
	assert.Equal(t, contract.IntentConfidenceInquiry, resp.Intent)
	assert.False(t, resp.Generated)
	assert.Contains(t, resp.Summary, "1.85")
	assert.Contains(t, resp.Summary, "80%")
	assert.NotEmpty(t, resp.Facts)
	assert.Equal(t, int64(1), resp.Interactions)
}

func TestDefend_FallbackWhenGenerationTimesOut(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrTimeout}
	svc, _ := newDefendFixture(t, client, true)

	resp, err := svc.Answer(context.Background(), "sess-1", "What if my budget were higher?")

	require.NoError(t, err)
	assert.False(t, resp.Generated)
	assert.Equal(t, contract.IntentBudgetSensitivity, resp.Intent)
	assert.Contains(t, resp.Summary, "2000")
	assert.NotEmpty(t, resp.Facts)
}

func TestDefend_FallbackWhenServerUnavailable(t *testing.T) {
	client := &mockLLMClient{err: llm.ErrUnavailable}
	svc, _ := newDefendFixture(t, client, true)

	resp, err := svc.Answer(context.Background(), "sess-1", "Are there competitors nearby?")

	require.NoError(t, err)
	assert.False(t, resp.Generated)
	assert.Equal(t, contract.IntentCompetitorInquiry, resp.Intent)
}

func TestDefend_AcceptsValidGeneratedSummary(t *testing.T) {
	answer := llmAnswer{Summary: "Aisle 3 End Cap leads at a predicted ROI of 1.85 against a 2000 budget."}
	data, _ := json.Marshal(answer)
	client := &mockLLMClient{response: string(data)}
	svc, _ := newDefendFixture(t, client, true)

	resp, err := svc.Answer(context.Background(), "sess-1", "What about my budget?")

	require.NoError(t, err)
	assert.True(t, resp.Generated)
	assert.Contains(t, resp.Summary, "1.85")
}

func TestDefend_RejectsInventedNumbers(t *testing.T) {
	answer := llmAnswer{Summary: "This placement will return 7.77 and save you 9999 a month."}
	data, _ := json.Marshal(answer)
	client := &mockLLMClient{response: string(data)}
	svc, _ := newDefendFixture(t, client, true)

	resp, err := svc.Answer(context.Background(), "sess-1", "What about my budget?")

	require.NoError(t, err)
	assert.False(t, resp.Generated)
	assert.NotContains(t, resp.Summary, "7.77")
}

func TestDefend_FallbackOnMalformedOutput(t *testing.T) {
	client := &mockLLMClient{response: "sorry, I cannot help with that"}
	svc, _ := newDefendFixture(t, client, true)

	resp, err := svc.Answer(context.Background(), "sess-1", "What about my budget?")

	require.NoError(t, err)
	assert.False(t, resp.Generated)
	assert.NotEmpty(t, resp.Summary)
}

func TestDefend_IncrementsInteractionCounter(t *testing.T) {
	svc, store := newDefendFixture(t, nil, false)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Answer(ctx, "sess-1", "why?")
		require.NoError(t, err)
	}

	count, err := store.Interactions("sess-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDefend_PredictionsUntouchedByAnswers(t *testing.T) {
	svc, store := newDefendFixture(t, nil, false)
	ctx := context.Background()

	before, err := store.Get("sess-1")
	require.NoError(t, err)
	roiBefore := before.Ranked[0].ROI

	_, err = svc.Answer(ctx, "sess-1", "compare Aisle 3 End Cap and Aisle 3 Eye Level")
	require.NoError(t, err)

	after, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, roiBefore, after.Ranked[0].ROI)
	assert.Len(t, after.Ranked, 2)
}

func TestDefend_EmptySessionStaysAnswerable(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Create(emptySession()))
	svc := NewDefendService(store, nil, false)

	resp, err := svc.Answer(context.Background(), "sess-1", "Why did nothing qualify for my budget?")

	require.NoError(t, err)
	assert.Equal(t, contract.IntentBudgetSensitivity, resp.Intent)
	assert.Contains(t, resp.Summary, "6000")
	assert.Contains(t, resp.Summary, "4000") // shortfall vs the 2000 budget
}

func TestDefend_LLMRefinesAmbiguousIntent(t *testing.T) {
	refined := llmIntent{Intent: "budget_sensitivity", Confidence: 0.9}
	data, _ := json.Marshal(refined)
	client := &mockLLMClient{response: string(data)}
	svc, _ := newDefendFixture(t, client, true)

	// No keyword matches, so the classifier defers to the model.
	resp, err := svc.Answer(context.Background(), "sess-1", "could I do more with less?")

	require.NoError(t, err)
	assert.Equal(t, contract.IntentBudgetSensitivity, resp.Intent)
}
