// Package todomesh provides a high-level façade over the session registry and
// the session-scoped todo data-access layer, enabling a web handler to obtain
// a ready-to-use store in one call. Most applications interact with this
// package by:
//  1. Creating a TodoMesh via New() (optionally overriding default in-memory services)
//  2. Resolving a store per request with ForSession(sessionID)
//  3. Performing CRUD / sorting operations through the core.TodoStore contract
//
// All defaults are safe for local development and testing; production
// deployments typically supply a durable session store, a custom seed dataset
// and a structured logger.
package todomesh

import (
	"github.com/hupe1980/todomesh/core"
	"github.com/hupe1980/todomesh/logging"
	"github.com/hupe1980/todomesh/seed"
	"github.com/hupe1980/todomesh/session"
	"github.com/hupe1980/todomesh/todostore"
)

// Options configures the TodoMesh instance.
type Options struct {
	// SessionStore resolves per-user sessions (defaults to in-memory).
	SessionStore core.SessionStore

	// Seed is installed onto sessions that have never been seeded
	// (defaults to the built-in dataset; see the seed package for YAML
	// loading).
	Seed []*core.TodoList

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// TodoMesh is the high-level façade aggregating the session registry and the
// data-access layer.
type TodoMesh struct {
	opts Options
}

// New creates a new TodoMesh instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *TodoMesh {
	opts := Options{
		SessionStore: session.NewInMemoryStore(),
		Seed:         seed.DefaultLists(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &TodoMesh{opts: opts}
}

// ForSession resolves the session (creating it lazily) and returns a store
// bound to it. First contact with a session installs the seed dataset.
func (m *TodoMesh) ForSession(sessionID string) (core.TodoStore, error) {
	sess, err := m.opts.SessionStore.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return m.storeFor(sess), nil
}

// NewSession creates a fresh session with a generated id and returns the id
// together with a store bound to it.
func (m *TodoMesh) NewSession() (string, core.TodoStore, error) {
	sess, err := m.opts.SessionStore.Create("")
	if err != nil {
		return "", nil, err
	}
	return sess.ID, m.storeFor(sess), nil
}

// Snapshot returns a deep copy of the session state for external readers.
func (m *TodoMesh) Snapshot(sessionID string) (*core.Session, error) {
	return m.opts.SessionStore.Snapshot(sessionID)
}

// EndSession removes the session and, by ownership, its list collection.
func (m *TodoMesh) EndSession(sessionID string) error {
	return m.opts.SessionStore.Delete(sessionID)
}

// Sessions exposes the underlying session store for advanced wiring.
func (m *TodoMesh) Sessions() core.SessionStore {
	return m.opts.SessionStore
}

func (m *TodoMesh) storeFor(sess *core.Session) core.TodoStore {
	return todostore.NewInMemoryStore(sess, func(o *todostore.Options) {
		o.Seed = m.opts.Seed
		o.Logger = m.opts.Logger
	})
}
