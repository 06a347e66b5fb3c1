package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shelfwise/shelfwise/internal/contract"
	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/repository"
	"github.com/shelfwise/shelfwise/internal/scoring"
	"github.com/shelfwise/shelfwise/internal/session"
)

// createAttempts bounds the insert-if-absent retry loop on the vanishingly
// unlikely UUID collision.
const createAttempts = 3

type analyzeService struct {
	locations   repository.LocationRepo
	lifts       repository.LiftRepo
	competitors repository.CompetitorRepo
	sessions    session.Store
	now         func() time.Time
	newID       func() string
}

// NewAnalyzeService creates the production AnalyzeService.
func NewAnalyzeService(
	locations repository.LocationRepo,
	lifts repository.LiftRepo,
	competitors repository.CompetitorRepo,
	sessions session.Store,
) AnalyzeService {
	return &analyzeService{
		locations:   locations,
		lifts:       lifts,
		competitors: competitors,
		sessions:    sessions,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *analyzeService) Analyze(ctx context.Context, req contract.AnalyzeRequest) (*contract.AnalyzeResponse, error) {
	request, err := req.Validate()
	if err != nil {
		return nil, err
	}

	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading locations: %w", err)
	}

	lift, err := s.lifts.GetByCategory(ctx, request.Category)
	if err != nil {
		// The taxonomy admits the category but the store has never seen
		// it, so no prediction can be grounded in history.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &contract.UnknownCategoryError{Category: string(request.Category)}
		}
		return nil, fmt.Errorf("loading category lift: %w", err)
	}

	competitors, err := s.loadCompetitors(ctx, request.Category, locations)
	if err != nil {
		return nil, err
	}

	result := scoring.Score(*request, locations, *lift, competitors)

	sess := &domain.AnalysisSession{
		Request:   *request,
		Ranked:    result.Ranked,
		Excluded:  result.Excluded,
		Empty:     result.Empty(),
		CreatedAt: s.now(),
	}
	if err := s.createSession(sess); err != nil {
		return nil, err
	}

	topN := req.TopN
	if topN <= 0 {
		topN = contract.DefaultTopN
	}

	return &contract.AnalyzeResponse{
		SessionID:   sess.ID,
		GeneratedAt: sess.CreatedAt,
		Predictions: result.TopN(topN),
		Excluded:    result.Excluded,
		Empty:       result.Empty(),
		Warnings:    request.AdvisoryWarnings(),
	}, nil
}

// createSession inserts the session under a fresh ID, retrying on the
// insert-if-absent collision.
func (s *analyzeService) createSession(sess *domain.AnalysisSession) error {
	for i := 0; i < createAttempts; i++ {
		sess.ID = s.newID()
		err := s.sessions.Create(sess)
		if err == nil {
			return nil
		}
		if !errors.Is(err, session.ErrExists) {
			return fmt.Errorf("storing session: %w", err)
		}
	}
	return fmt.Errorf("storing session: %w", session.ErrExists)
}

// loadCompetitors gathers per-location competitor benchmarks for the
// request's category. Locations without observations are simply absent.
func (s *analyzeService) loadCompetitors(ctx context.Context, category domain.Category, locations []domain.LocationProfile) (map[string]domain.CompetitorStats, error) {
	competitors := make(map[string]domain.CompetitorStats)
	for _, loc := range locations {
		stats, err := s.competitors.Stats(ctx, category, loc.ID)
		if err != nil {
			return nil, fmt.Errorf("loading competitor stats for %s: %w", loc.ID, err)
		}
		if stats != nil {
			competitors[loc.ID] = *stats
		}
	}
	return competitors, nil
}
