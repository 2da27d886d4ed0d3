package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/aryanved123/Ultimate-Texas-Holdem/pkg/holdem"
)

// ErrNotFound is an error when a session ID has no active game
var ErrNotFound = errors.New("game not started")

// Session ties a game to an ID and a lock. The game itself has no
// thread-safety; every operation on it must run under the session's
// lock.
type Session struct {
	ID   uuid.UUID
	Game *holdem.Game

	mu sync.Mutex
}

// New returns a session wrapping the game
func New(game *holdem.Game) *Session {
	return &Session{
		ID:   uuid.New(),
		Game: game,
	}
}

// Lock acquires the session for a single caller
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Store keeps the active sessions in memory, keyed by ID
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Add inserts the session into the store
func (s *Store) Add(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
}

// Get returns the session for the ID, or ErrNotFound
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	return sess, nil
}

// Delete removes the session from the store
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Count returns the number of active sessions
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
