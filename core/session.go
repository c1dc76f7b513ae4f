package core

import (
	"time"

	"github.com/google/uuid"
)

// Session is the per-user container owning the sequence of todo lists. It is
// the single owner of the collection: a TodoStore bound to the session holds
// a reference to it, so mutations made through the store are visible to the
// session immediately.
//
// Contract:
//   - TodoLists == nil means "never seeded"; store construction installs the
//     seed dataset and writes the field back (establishing it for subsequent
//     requests)
//   - Mutations update the Updated timestamp via Touch
//   - Clone performs a deep copy for safe divergence.
//
// A session is accessed by one logical request at a time, so the struct
// carries no lock; cross-session concurrency is handled by SessionStore
// implementations.
type Session struct {
	ID        string      `json:"id"`
	TodoLists []*TodoList `json:"todo_lists"`
	Created   time.Time   `json:"created"`
	Updated   time.Time   `json:"updated"`
}

// NewSession creates an unseeded session with the given ID.
func NewSession(id string) *Session {
	now := time.Now().UTC()
	return &Session{ID: id, Created: now, Updated: now}
}

// Touch bumps the Updated timestamp. Called by stores after each mutation.
func (s *Session) Touch() {
	s.Updated = time.Now().UTC()
}

// Clone returns a deep copy of the session safe for independent mutation.
func (s *Session) Clone() *Session {
	clone := &Session{ID: s.ID, Created: s.Created, Updated: s.Updated}
	if s.TodoLists != nil {
		clone.TodoLists = CloneLists(s.TodoLists)
	}
	return clone
}

// SessionStore persists sessions and hands them out to the data-access layer.
type SessionStore interface {
	// Get returns the live session for the id, creating it lazily. The
	// returned pointer is the owned object, not a copy: TodoStore
	// implementations must alias the session's collection so their
	// mutations stick.
	Get(id string) (*Session, error)

	// Create forces the creation (or overwriting) of a session. An empty id
	// is replaced with a freshly generated one.
	Create(id string) (*Session, error)

	// Snapshot returns a deep copy for external readers, or ErrNotFound.
	Snapshot(id string) (*Session, error)

	// Delete removes the session, or returns ErrNotFound.
	Delete(id string) error
}

// NewSessionID returns a fresh globally unique session identifier.
func NewSessionID() string { return uuid.NewString() }
