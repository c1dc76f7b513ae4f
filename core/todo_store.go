package core

// TodoStore defines the data-access contract over one session's todo-list
// collection. Two backends share it: the in-memory implementation in the
// todostore package (session state) and a future database-backed one; callers
// pick an implementation at wiring time and never depend on concrete types.
//
// Absence of a list or todo is the only failure mode and is signaled with
// ErrNotFound. Read operations return deep copies so callers can never alias
// internal state; mutating operations alter the session-owned collection
// directly.
type TodoStore interface {
	// CreateTodoList appends a new empty list with a fresh id. Title
	// uniqueness is the caller's pre-check (IsUniqueList), not enforced here.
	CreateTodoList(title string) error

	// SortedTodoLists returns a deep copy of all lists, incomplete (or
	// empty) lists before fully-done ones, titles ordered case-insensitively
	// within each group.
	SortedTodoLists() []*TodoList

	// SortedTodos returns a deep copy of one list's todos under the same
	// partition and ordering policy.
	SortedTodos(listID int) ([]Todo, error)

	// LoadTodoList returns a deep copy of the list, or ErrNotFound.
	LoadTodoList(listID int) (*TodoList, error)

	// LoadTodo returns a deep copy of a single todo, or ErrNotFound.
	LoadTodo(listID, todoID int) (*Todo, error)

	// ToggleDoneTodo flips the done flag of the stored todo.
	ToggleDoneTodo(listID, todoID int) error

	// DeleteTodo removes a single todo from its list.
	DeleteTodo(listID, todoID int) error

	// DeleteTodoList removes the list and, by containment, all of its todos.
	DeleteTodoList(listID int) error

	// MarkAllDone sets done on every todo in the list.
	MarkAllDone(listID int) error

	// AddNewTodo appends an open todo with a fresh id to the list.
	AddNewTodo(listID int, title string) error

	// RenameTodoList replaces the list title in place.
	RenameTodoList(listID int, newTitle string) error

	// IsUniqueList reports whether no existing list carries this exact
	// title. The match is case-sensitive even though sorting is not.
	IsUniqueList(title string) bool

	// IsUniqueConstraintViolation reports whether err is a duplicate-title
	// rejection from the backend. The in-memory backend never produces one;
	// the method exists so both backends expose an identical surface.
	IsUniqueConstraintViolation(err error) bool
}
