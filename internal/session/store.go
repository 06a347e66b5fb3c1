// Package session holds completed analyses in process memory so follow-up
// questions can be answered from the exact state that produced the
// original recommendation. Sessions have no expiry and do not survive
// restarts; both are deliberate.
package session

import (
	"errors"
	"sync"

	"github.com/shelfwise/shelfwise/internal/domain"
)

var (
	// ErrNotFound indicates the session ID is unknown to this process.
	ErrNotFound = errors.New("session not found")

	// ErrExists indicates an insert-if-absent collision on the session ID.
	ErrExists = errors.New("session already exists")
)

// Store is the lifecycle surface for analysis sessions. Implementations
// must be safe for concurrent use: creates are insert-if-absent, reads may
// run in parallel, and Increment is the only mutation after creation.
// The interaction counter lives in the store rather than on the session,
// so handed-out sessions are immutable and race-free to share.
type Store interface {
	Create(s *domain.AnalysisSession) error
	Get(id string) (*domain.AnalysisSession, error)
	Increment(id string) (int64, error)
	Interactions(id string) (int64, error)
}

// MemoryStore is the in-process Store implementation.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.AnalysisSession
	counts   map[string]int64
}

// NewMemoryStore creates an empty in-process session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*domain.AnalysisSession),
		counts:   make(map[string]int64),
	}
}

func (m *MemoryStore) Create(s *domain.AnalysisSession) error {
	if s.ID == "" {
		return errors.New("session id must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[s.ID]; ok {
		return ErrExists
	}
	m.sessions[s.ID] = s
	return nil
}

func (m *MemoryStore) Get(id string) (*domain.AnalysisSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Increment bumps the session's defend interaction counter and returns the
// new value. The session itself is never touched.
func (m *MemoryStore) Increment(id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return 0, ErrNotFound
	}
	m.counts[id]++
	return m.counts[id], nil
}

// Interactions reports how many defend calls the session has served.
func (m *MemoryStore) Interactions(id string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.sessions[id]; !ok {
		return 0, ErrNotFound
	}
	return m.counts[id], nil
}

// Len reports how many sessions the store currently holds.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
