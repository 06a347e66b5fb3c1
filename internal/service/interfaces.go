package service

import (
	"context"

	"github.com/shelfwise/shelfwise/internal/contract"
	"github.com/shelfwise/shelfwise/internal/domain"
)

// AnalyzeService runs the full analysis pipeline: validate the request,
// score the catalog, open a session, and present the top predictions.
type AnalyzeService interface {
	Analyze(ctx context.Context, req contract.AnalyzeRequest) (*contract.AnalyzeResponse, error)
}

// LocationService serves the placement catalog for browsing.
type LocationService interface {
	List(ctx context.Context) ([]domain.LocationProfile, error)
	GetByID(ctx context.Context, id string) (*domain.LocationProfile, error)
}

// SessionInfo is a read-only snapshot of a stored session for inspection.
type SessionInfo struct {
	Session      *domain.AnalysisSession
	Interactions int64
}

// SessionService exposes stored sessions for inspection commands.
type SessionService interface {
	Inspect(ctx context.Context, id string) (*SessionInfo, error)
}
