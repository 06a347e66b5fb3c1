package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shelfwise/shelfwise/internal/contract"
	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/llm"
	"github.com/shelfwise/shelfwise/internal/session"
)

// DefendService answers follow-up questions about a completed analysis.
// Answers are always grounded in the session's stored data; the LLM only
// ever rephrases, and any generation failure falls back to a deterministic
// template without surfacing an error.
type DefendService interface {
	Answer(ctx context.Context, sessionID, question string) (*contract.DefendResponse, error)
}

type defendService struct {
	sessions session.Store
	client   llm.Client
	enabled  bool
}

// NewDefendService creates a DefendService. A nil client disables text
// generation entirely; every answer then comes from the templates.
func NewDefendService(sessions session.Store, client llm.Client, enabled bool) DefendService {
	return &defendService{
		sessions: sessions,
		client:   client,
		enabled:  enabled && client != nil,
	}
}

func (s *defendService) Answer(ctx context.Context, sessionID, question string) (*contract.DefendResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, &contract.SessionNotFoundError{SessionID: sessionID}
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}

	intent := s.classify(ctx, question, sess)
	facts := BuildFacts(intent, sess)

	summary, generated := s.draft(ctx, question, intent, facts, sess)

	interactions, err := s.sessions.Increment(sessionID)
	if err != nil {
		return nil, fmt.Errorf("recording interaction: %w", err)
	}

	return &contract.DefendResponse{
		SessionID:    sessionID,
		Intent:       intent.Intent,
		Summary:      summary,
		Facts:        facts,
		Generated:    generated,
		Interactions: interactions,
	}, nil
}

// classify runs the keyword classifier, then lets the LLM refine only the
// ambiguous outcome. Named locations always come from keyword matching so
// the model cannot point an answer at data the user never mentioned.
func (s *defendService) classify(ctx context.Context, question string, sess *domain.AnalysisSession) ClassifiedIntent {
	intent := ClassifyIntent(question, sess)
	if !s.enabled || intent.Intent != contract.IntentGeneralExplanation {
		return intent
	}

	refined, err := s.classifyWithLLM(ctx, question, sess)
	if err != nil {
		return intent
	}
	refined.LocationA = intent.LocationA
	refined.LocationB = ""
	return refined
}

func (s *defendService) classifyWithLLM(ctx context.Context, question string, sess *domain.AnalysisSession) (ClassifiedIntent, error) {
	trace := BuildSessionTrace(sess)
	traceJSON, err := json.Marshal(trace)
	if err != nil {
		return ClassifiedIntent{}, err
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskClassify,
		SystemPrompt: classifySystemPrompt,
		UserPrompt:   fmt.Sprintf("Session data:\n%s\n\nQuestion: %s", traceJSON, question),
	})
	if err != nil {
		return ClassifiedIntent{}, err
	}

	parsed, err := llm.ExtractJSON[llmIntent](resp.Text, validateLLMIntent)
	if err != nil {
		return ClassifiedIntent{}, err
	}

	return ClassifiedIntent{
		Intent:     contract.DefendIntent(parsed.Intent),
		Confidence: parsed.Confidence,
	}, nil
}

// draft produces the answer summary. Any failure on the generation path,
// including numeric claims the facts cannot back, silently yields the
// deterministic template instead.
func (s *defendService) draft(ctx context.Context, question string, intent ClassifiedIntent, facts []contract.Fact, sess *domain.AnalysisSession) (string, bool) {
	fallback := TemplateAnswer(intent, sess)
	if !s.enabled {
		return fallback, false
	}

	trace := BuildSessionTrace(sess)
	prompt := struct {
		Trace    SessionTrace    `json:"trace"`
		Facts    []contract.Fact `json:"facts"`
		Question string          `json:"question"`
	}{trace, facts, question}

	promptJSON, err := json.MarshalIndent(prompt, "", "  ")
	if err != nil {
		return fallback, false
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskDefend,
		SystemPrompt: defendSystemPrompt,
		UserPrompt:   string(promptJSON),
	})
	if err != nil {
		return fallback, false
	}

	answer, err := llm.ExtractJSON[llmAnswer](resp.Text, nil)
	if err != nil || strings.TrimSpace(answer.Summary) == "" {
		return fallback, false
	}

	if err := ValidateNumericClaims(answer.Summary, facts, namedPhrases(sess)); err != nil {
		return fallback, false
	}

	return strings.TrimSpace(answer.Summary), true
}

// namedPhrases collects the location and product names that may appear in
// an answer, so digits inside them are not mistaken for numeric claims.
func namedPhrases(sess *domain.AnalysisSession) []string {
	phrases := []string{sess.Request.Name}
	for _, p := range sess.Ranked {
		phrases = append(phrases, p.LocationName)
	}
	for _, e := range sess.Excluded {
		phrases = append(phrases, e.LocationName)
	}
	return phrases
}

// validateLLMIntent is a schema validator for ExtractJSON.
func validateLLMIntent(p llmIntent) error {
	if !IsValidIntent(contract.DefendIntent(p.Intent)) {
		return fmt.Errorf("unknown intent: %s", p.Intent)
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return fmt.Errorf("confidence must be in [0,1], got %f", p.Confidence)
	}
	return nil
}
