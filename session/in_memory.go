package session

import (
	"sync"

	"github.com/hupe1980/todomesh/core"
)

// InMemoryStore is a volatile SessionStore implementation keeping sessions in
// a process local map. The registry map is guarded so independent sessions
// can be resolved from concurrent requests; a single session is still
// accessed by one logical request at a time.
//
// Get and Create return the live session object on purpose: the data-access
// layer must alias the session's list collection so its mutations stick.
// External readers that only want to inspect state use Snapshot, which
// returns a deep copy.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

// NewInMemoryStore constructs an empty in-memory session store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*core.Session)}
}

// Get returns the live session for the id, creating it lazily.
func (s *InMemoryStore) Get(sessionID string) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionID]; ok {
		return sess, nil
	}
	return s.createSessionLocked(sessionID), nil
}

// Create forces the creation (or overwriting) of a session with the given id.
// An empty id is replaced with a freshly generated one.
func (s *InMemoryStore) Create(sessionID string) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sessionID == "" {
		sessionID = core.NewSessionID()
	}
	return s.createSessionLocked(sessionID), nil
}

// Snapshot returns a deep copy of the session for external readers, or
// ErrNotFound when the session does not exist.
func (s *InMemoryStore) Snapshot(sessionID string) (*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, core.ErrNotFound
	}
	return sess.Clone(), nil
}

// Delete removes the session if present or returns ErrNotFound.
func (s *InMemoryStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[sessionID]; !ok {
		return core.ErrNotFound
	}
	delete(s.sessions, sessionID)
	return nil
}

// createSessionLocked allocates and stores a new session; caller must already
// hold the write lock. Internal helper used by Get/Create paths.
func (s *InMemoryStore) createSessionLocked(sessionID string) *core.Session {
	sess := core.NewSession(sessionID)
	s.sessions[sessionID] = sess
	return sess
}
