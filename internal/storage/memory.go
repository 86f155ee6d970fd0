// Package storage keeps editing sessions in memory.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/hammamikhairi/brewcraft/internal/domain"
	"github.com/hammamikhairi/brewcraft/internal/logger"
)

// Compile-time interface check.
var _ domain.SessionStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory session store.
//
// Sessions are copied on the way in and on the way out, so a caller never
// holds memory the store or another caller can see. The REPL edits its own
// copy and saves it back; the status bar reads its own copy meanwhile.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	log      *logger.Logger
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*domain.Session),
		log:      log,
	}
}

// Save stores a copy of session, replacing any previous version.
func (s *MemoryStore) Save(ctx context.Context, session *domain.Session) error {
	snap := session.Clone()

	s.mu.Lock()
	s.sessions[snap.ID] = snap
	s.mu.Unlock()

	s.log.Debug("saved session %s (kind=%s, status=%s)", snap.ID, snap.Kind, snap.Status)
	return nil
}

// Load returns a private copy of the session.
func (s *MemoryStore) Load(ctx context.Context, id string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sess.Clone(), nil
}

// Delete removes a session by ID.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return domain.ErrNotFound
	}
	s.log.Debug("deleted session %s", id)
	return nil
}

// ListActive returns copies of the sessions still being edited, oldest
// first.
func (s *MemoryStore) ListActive(ctx context.Context) ([]*domain.Session, error) {
	s.mu.RLock()
	var out []*domain.Session
	for _, sess := range s.sessions {
		if sess.Status == domain.SessionActive {
			out = append(out, sess.Clone())
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out, nil
}
