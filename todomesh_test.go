package todomesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/todomesh/core"
	"github.com/hupe1980/todomesh/internal/testutil"
)

// MockSessionStore for verifying façade wiring
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(id string) (*core.Session, error) {
	args := m.Called(id)
	return args.Get(0).(*core.Session), args.Error(1)
}

func (m *MockSessionStore) Create(id string) (*core.Session, error) {
	args := m.Called(id)
	return args.Get(0).(*core.Session), args.Error(1)
}

func (m *MockSessionStore) Snapshot(id string) (*core.Session, error) {
	args := m.Called(id)
	return args.Get(0).(*core.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestForSessionSeedsFirstContact(t *testing.T) {
	mesh := New()
	store, err := mesh.ForSession("user-1")
	require.NoError(t, err)

	lists := store.SortedTodoLists()
	assert.NotEmpty(t, lists, "first contact installs the default seed")
}

func TestForSessionSharesStateAcrossRequests(t *testing.T) {
	mesh := New(func(o *Options) {
		o.Seed = nil
	})

	first, err := mesh.ForSession("user-1")
	require.NoError(t, err)
	require.NoError(t, first.CreateTodoList("Work"))
	require.NoError(t, first.AddNewTodo(1, "A"))

	// a second request resolves a new store over the same session
	second, err := mesh.ForSession("user-1")
	require.NoError(t, err)
	list, err := second.LoadTodoList(1)
	require.NoError(t, err)
	assert.Equal(t, "Work", list.Title)
	require.Len(t, list.Todos, 1)

	// other sessions stay independent
	other, err := mesh.ForSession("user-2")
	require.NoError(t, err)
	assert.True(t, other.IsUniqueList("Work"))
}

func TestCustomSeed(t *testing.T) {
	mesh := New(func(o *Options) {
		o.Seed = []*core.TodoList{testutil.NewListBuilder(1, "Onboarding").Todo(1, "Read the handbook", false).Build()}
	})

	store, err := mesh.ForSession("user-1")
	require.NoError(t, err)
	lists := store.SortedTodoLists()
	require.Len(t, lists, 1)
	assert.Equal(t, "Onboarding", lists[0].Title)
}

func TestNewSessionGeneratesID(t *testing.T) {
	mesh := New()
	id, store, err := mesh.NewSession()
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.NotNil(t, store)

	otherID, _, err := mesh.NewSession()
	require.NoError(t, err)
	assert.NotEqual(t, id, otherID)
}

func TestSnapshotAndEndSession(t *testing.T) {
	mesh := New(func(o *Options) {
		o.Seed = nil
	})
	store, err := mesh.ForSession("user-1")
	require.NoError(t, err)
	require.NoError(t, store.CreateTodoList("Work"))

	snap, err := mesh.Snapshot("user-1")
	require.NoError(t, err)
	require.Len(t, snap.TodoLists, 1)
	// snapshot is isolated from the live session
	snap.TodoLists[0].Title = "mutated"
	reread, err := mesh.Snapshot("user-1")
	require.NoError(t, err)
	assert.Equal(t, "Work", reread.TodoLists[0].Title)

	require.NoError(t, mesh.EndSession("user-1"))
	_, err = mesh.Snapshot("user-1")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestForSessionUsesInjectedStore(t *testing.T) {
	sess := testutil.NewSessionBuilder("user-1").Build()
	ms := &MockSessionStore{}
	ms.On("Get", "user-1").Return(sess, nil)

	mesh := New(func(o *Options) {
		o.SessionStore = ms
	})
	store, err := mesh.ForSession("user-1")
	require.NoError(t, err)
	require.NotNil(t, store)
	ms.AssertExpectations(t)

	// the session was already seeded (empty collection), so no seed applies
	assert.Empty(t, store.SortedTodoLists())
}
