// internal/store/memory.go
//
// In-memory store for live solve sessions.
// Per-game state exists only while a game is being played and is gone when
// the process restarts. Nothing here is ever persisted.
//
// Characteristics:
//   - Stores *Session objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Errors are returned for missing session IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/liliblazquez/wordlesolver/internal/game"
	"github.com/liliblazquez/wordlesolver/internal/solver"
)

// Session pairs one solver run with the local game it plays against.
// The session ID is the underlying game's ID. Mu serializes stepping, since
// a Run is not safe for concurrent use.
type Session struct {
	Mu     sync.Mutex
	ID     string
	Run    *solver.Run
	Client *game.Local
}

// Store defines the session registry interface.
// Implementations may be backed by memory (this package) or anything else
// with the same ephemeral semantics.
type Store interface {
	// Save registers or updates a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID.
	// Returns an error if the session is not found.
	Get(ctx context.Context, id string) (*Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex        // guards sessions map
	sessions map[string]*Session // keyed by Session.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

// Save adds or updates the session in the map.
func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, errors.New("not found")
}
