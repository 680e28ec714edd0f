package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/linaank/web1/internal/domain"
)

// DefaultMaxRows is the per-session row cap used when none is configured.
const DefaultMaxRows = 2000

// SessionStore is an in-memory domain.SessionStore.
type SessionStore struct {
	sessions sync.Map // map[string]*History
	count    atomic.Int64
	maxRows  int
	onEvict  func(n int)
}

// Option configures a SessionStore.
type Option func(*SessionStore)

// WithEvictionHook registers fn to be called with the number of rows dropped
// whenever an append pushes a session over its cap.
func WithEvictionHook(fn func(n int)) Option {
	return func(s *SessionStore) {
		s.onEvict = fn
	}
}

// NewSessionStore creates a store that keeps at most maxRows rows per session.
// A non-positive maxRows falls back to DefaultMaxRows.
func NewSessionStore(maxRows int, opts ...Option) *SessionStore {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	s := &SessionStore{maxRows: maxRows}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOrCreate returns the session's history, creating an empty one on first access.
func (s *SessionStore) GetOrCreate(_ context.Context, sessionID string) (*History, error) {
	if sessionID == "" {
		return nil, domain.ErrEmptySessionID
	}
	return s.getOrCreate(sessionID), nil
}

func (s *SessionStore) getOrCreate(sessionID string) *History {
	if h, ok := s.sessions.Load(sessionID); ok {
		return h.(*History)
	}
	h, loaded := s.sessions.LoadOrStore(sessionID, newHistory(s.maxRows))
	if !loaded {
		s.count.Add(1)
	}
	return h.(*History)
}

func (s *SessionStore) Append(_ context.Context, sessionID, row string) error {
	if sessionID == "" {
		return domain.ErrEmptySessionID
	}
	evicted := s.getOrCreate(sessionID).push(row)
	if evicted > 0 && s.onEvict != nil {
		s.onEvict(evicted)
	}
	return nil
}

func (s *SessionStore) Rows(_ context.Context, sessionID string) ([]string, error) {
	h, ok := s.sessions.Load(sessionID)
	if !ok {
		return nil, nil
	}
	return h.(*History).Rows(), nil
}

func (s *SessionStore) Clear(_ context.Context, sessionID string) error {
	if _, loaded := s.sessions.LoadAndDelete(sessionID); loaded {
		s.count.Add(-1)
	}
	return nil
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	return int(s.count.Load())
}

// MaxRows returns the per-session row cap.
func (s *SessionStore) MaxRows() int {
	return s.maxRows
}
