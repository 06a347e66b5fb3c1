package service

import (
	"context"
	"errors"

	"github.com/shelfwise/shelfwise/internal/contract"
	"github.com/shelfwise/shelfwise/internal/session"
)

type sessionService struct {
	sessions session.Store
}

// NewSessionService creates a SessionService over the in-process store.
func NewSessionService(sessions session.Store) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) Inspect(ctx context.Context, id string) (*SessionInfo, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, &contract.SessionNotFoundError{SessionID: id}
		}
		return nil, err
	}

	// The counter is read through the store so concurrent defend calls
	// cannot race this snapshot.
	count, err := s.sessions.Interactions(id)
	if err != nil {
		return nil, err
	}
	return &SessionInfo{Session: sess, Interactions: count}, nil
}
