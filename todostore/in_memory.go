package todostore

import (
	"github.com/hupe1980/todomesh/core"
	"github.com/hupe1980/todomesh/logging"
	"github.com/hupe1980/todomesh/seed"
)

// InMemoryStore is a core.TodoStore bound to one session's list collection.
// It mutates the session-owned slice in place, so every change is visible to
// the session immediately, and it returns clones from every read path so
// callers can never alias internal state.
//
// The session is accessed by one logical request at a time; the store takes
// no locks and is not safe for concurrent use on the same session.
type InMemoryStore struct {
	sess   *core.Session
	logger logging.Logger
}

// Options configures construction of an InMemoryStore.
type Options struct {
	// Seed is installed (deep-copied) onto sessions that have never been
	// seeded. Defaults to the built-in seed dataset.
	Seed []*core.TodoList

	// Logger receives debug records for store operations. Defaults to NoOp.
	Logger logging.Logger
}

// NewInMemoryStore binds a store to the given session. A session whose
// collection is nil has never been seeded; the seed dataset is deep-copied
// onto it, establishing the field for subsequent requests.
func NewInMemoryStore(sess *core.Session, optFns ...func(o *Options)) *InMemoryStore {
	opts := Options{
		Seed:   seed.DefaultLists(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if sess.TodoLists == nil {
		sess.TodoLists = core.CloneLists(opts.Seed)
		sess.Touch()
		opts.Logger.Debug("session seeded session_id=%s lists=%d", sess.ID, len(sess.TodoLists))
	}
	return &InMemoryStore{sess: sess, logger: opts.Logger}
}

// CreateTodoList appends a new empty list with a fresh id. It never fails;
// title uniqueness is the caller's pre-check via IsUniqueList.
func (s *InMemoryStore) CreateTodoList(title string) error {
	list := &core.TodoList{ID: s.nextListID(), Title: title, Todos: []core.Todo{}}
	s.sess.TodoLists = append(s.sess.TodoLists, list)
	s.sess.Touch()
	s.logger.Debug("todo list created session_id=%s list_id=%d title=%q", s.sess.ID, list.ID, title)
	return nil
}

// SortedTodoLists returns a deep copy of all lists, incomplete (or empty)
// lists before fully-done ones, titles ordered case-insensitively within
// each group.
func (s *InMemoryStore) SortedTodoLists() []*core.TodoList {
	return core.SortTodoLists(s.sess.TodoLists)
}

// SortedTodos returns a deep copy of one list's todos under the same
// partition and ordering policy.
func (s *InMemoryStore) SortedTodos(listID int) ([]core.Todo, error) {
	list := s.findList(listID)
	if list == nil {
		return nil, core.ErrNotFound
	}
	return core.SortTodos(list), nil
}

// LoadTodoList returns a deep copy of the list, or ErrNotFound.
func (s *InMemoryStore) LoadTodoList(listID int) (*core.TodoList, error) {
	list := s.findList(listID)
	if list == nil {
		return nil, core.ErrNotFound
	}
	return list.Clone(), nil
}

// LoadTodo returns a deep copy of a single todo, or ErrNotFound.
func (s *InMemoryStore) LoadTodo(listID, todoID int) (*core.Todo, error) {
	list := s.findList(listID)
	if list == nil {
		return nil, core.ErrNotFound
	}
	todo := findTodo(list, todoID)
	if todo == nil {
		return nil, core.ErrNotFound
	}
	clone := todo.Clone()
	return &clone, nil
}

// ToggleDoneTodo flips the done flag of the stored todo.
func (s *InMemoryStore) ToggleDoneTodo(listID, todoID int) error {
	list := s.findList(listID)
	if list == nil {
		return core.ErrNotFound
	}
	todo := findTodo(list, todoID)
	if todo == nil {
		return core.ErrNotFound
	}
	todo.Done = !todo.Done
	s.sess.Touch()
	s.logger.Debug("todo toggled session_id=%s list_id=%d todo_id=%d done=%t", s.sess.ID, listID, todoID, todo.Done)
	return nil
}

// DeleteTodo removes a single todo from its list.
func (s *InMemoryStore) DeleteTodo(listID, todoID int) error {
	list := s.findList(listID)
	if list == nil {
		return core.ErrNotFound
	}
	for i := range list.Todos {
		if list.Todos[i].ID == todoID {
			list.Todos = append(list.Todos[:i], list.Todos[i+1:]...)
			s.sess.Touch()
			s.logger.Debug("todo deleted session_id=%s list_id=%d todo_id=%d", s.sess.ID, listID, todoID)
			return nil
		}
	}
	return core.ErrNotFound
}

// DeleteTodoList removes the list and, by containment, all of its todos.
func (s *InMemoryStore) DeleteTodoList(listID int) error {
	for i := range s.sess.TodoLists {
		if s.sess.TodoLists[i].ID == listID {
			s.sess.TodoLists = append(s.sess.TodoLists[:i], s.sess.TodoLists[i+1:]...)
			s.sess.Touch()
			s.logger.Debug("todo list deleted session_id=%s list_id=%d", s.sess.ID, listID)
			return nil
		}
	}
	return core.ErrNotFound
}

// MarkAllDone sets done on every todo in the list.
func (s *InMemoryStore) MarkAllDone(listID int) error {
	list := s.findList(listID)
	if list == nil {
		return core.ErrNotFound
	}
	for i := range list.Todos {
		list.Todos[i].Done = true
	}
	s.sess.Touch()
	s.logger.Debug("todo list completed session_id=%s list_id=%d todos=%d", s.sess.ID, listID, len(list.Todos))
	return nil
}

// AddNewTodo appends an open todo with a fresh id to the list.
func (s *InMemoryStore) AddNewTodo(listID int, title string) error {
	list := s.findList(listID)
	if list == nil {
		return core.ErrNotFound
	}
	todo := core.Todo{ID: nextTodoID(list), Title: title, Done: false}
	list.Todos = append(list.Todos, todo)
	s.sess.Touch()
	s.logger.Debug("todo added session_id=%s list_id=%d todo_id=%d title=%q", s.sess.ID, listID, todo.ID, title)
	return nil
}

// RenameTodoList replaces the list title in place.
func (s *InMemoryStore) RenameTodoList(listID int, newTitle string) error {
	list := s.findList(listID)
	if list == nil {
		return core.ErrNotFound
	}
	list.Title = newTitle
	s.sess.Touch()
	s.logger.Debug("todo list renamed session_id=%s list_id=%d title=%q", s.sess.ID, listID, newTitle)
	return nil
}

// IsUniqueList reports whether no existing list carries this exact title.
// The match is case-sensitive even though sorting is not.
func (s *InMemoryStore) IsUniqueList(title string) bool {
	for _, l := range s.sess.TodoLists {
		if l.Title == title {
			return false
		}
	}
	return true
}

// IsUniqueConstraintViolation always reports false: the in-memory backend
// cannot produce a duplicate-title rejection. It exists so this store exposes
// the identical surface as a database-backed one.
func (s *InMemoryStore) IsUniqueConstraintViolation(err error) bool {
	return false
}

// findList returns the live stored list, or nil. Internal helper; callers of
// the public API only ever receive clones.
func (s *InMemoryStore) findList(listID int) *core.TodoList {
	for _, l := range s.sess.TodoLists {
		if l.ID == listID {
			return l
		}
	}
	return nil
}

// findTodo returns the live stored todo within the list, or nil.
func findTodo(list *core.TodoList, todoID int) *core.Todo {
	for i := range list.Todos {
		if list.Todos[i].ID == todoID {
			return &list.Todos[i]
		}
	}
	return nil
}

// nextListID returns max existing list id + 1. List ids are unique across
// the whole collection.
func (s *InMemoryStore) nextListID() int {
	max := 0
	for _, l := range s.sess.TodoLists {
		if l.ID > max {
			max = l.ID
		}
	}
	return max + 1
}

// nextTodoID returns max existing todo id + 1 within the owning list. Todo
// ids are only unique per list.
func nextTodoID(list *core.TodoList) int {
	max := 0
	for _, t := range list.Todos {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
