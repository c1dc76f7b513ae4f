package testutil

import (
	"github.com/hupe1980/todomesh/core"
)

// ListBuilder helps construct todo lists with fluent chaining for tests.
// Example:
//
//	list := NewListBuilder(1, "Work").Todo(1, "A", false).Todo(2, "B", true).Build()
type ListBuilder struct {
	id    int
	title string
	todos []core.Todo
}

// NewListBuilder creates a new builder for a list with the given id and title.
// Use the chainable Todo method, then call Build.
func NewListBuilder(id int, title string) *ListBuilder {
	return &ListBuilder{id: id, title: title}
}

// Todo appends a todo to the resulting list (chainable).
func (b *ListBuilder) Todo(id int, title string, done bool) *ListBuilder {
	b.todos = append(b.todos, core.Todo{ID: id, Title: title, Done: done})
	return b
}

// Build returns a *core.TodoList with the accumulated todos.
func (b *ListBuilder) Build() *core.TodoList {
	list := &core.TodoList{ID: b.id, Title: b.title, Todos: make([]core.Todo, len(b.todos))}
	copy(list.Todos, b.todos)
	return list
}

// SessionBuilder helps construct pre-seeded sessions for tests.
type SessionBuilder struct {
	id    string
	lists []*core.TodoList
}

// NewSessionBuilder creates a new builder for a session with the given id.
func NewSessionBuilder(id string) *SessionBuilder {
	return &SessionBuilder{id: id}
}

// List appends a todo list to the resulting session (chainable).
func (b *SessionBuilder) List(list *core.TodoList) *SessionBuilder {
	b.lists = append(b.lists, list)
	return b
}

// Build returns a *core.Session owning deep copies of the accumulated lists.
// An empty builder yields a seeded-but-empty session, not an unseeded one.
func (b *SessionBuilder) Build() *core.Session {
	s := core.NewSession(b.id)
	s.TodoLists = core.CloneLists(b.lists)
	return s
}
