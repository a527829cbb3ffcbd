// internal/store/memory.go
//
// In-memory registry of play sessions keyed by Session.ID.
// State is lost when the process exits.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/wordtravel/engine/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store holds sessions for later lookup.
type Store interface {
	Save(ctx context.Context, s *game.Session) error
	Get(ctx context.Context, id string) (*game.Session, error)
	Delete(ctx context.Context, id string) error
}

type memory struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

// NewMemoryStore returns an empty concurrency-safe Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*game.Session)}
}

func (m *memory) Save(ctx context.Context, s *game.Session) error {
	if s == nil || s.ID == "" {
		return errors.New("session without ID")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// Delete is a no-op for unknown IDs.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
