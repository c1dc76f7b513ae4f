package core

// Todo is a single task item with a completion flag. Todo IDs are only
// unique within the owning TodoList, never across lists.
type Todo struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Clone returns an independent copy of the todo.
func (t Todo) Clone() Todo {
	return Todo{ID: t.ID, Title: t.Title, Done: t.Done}
}

// TodoList is a named, ordered collection of todos. It is owned by exactly
// one session; todos are owned by containment and never shared across lists.
//
// Contract:
//   - ID is unique across the owning session's collection
//   - Title uniqueness is enforced by the caller via IsUniqueList, not here
//   - Clone performs a deep copy so callers can diverge safely.
type TodoList struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Todos []Todo `json:"todos"`
}

// IsDone reports whether the list is complete: it has at least one todo and
// every todo is done. An empty list is never done.
func (l *TodoList) IsDone() bool {
	if len(l.Todos) == 0 {
		return false
	}
	for _, t := range l.Todos {
		if !t.Done {
			return false
		}
	}
	return true
}

// HasUndoneTodos reports whether any todo in the list is still open.
func (l *TodoList) HasUndoneTodos() bool {
	for _, t := range l.Todos {
		if !t.Done {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the list including its todos.
func (l *TodoList) Clone() *TodoList {
	clone := &TodoList{ID: l.ID, Title: l.Title, Todos: make([]Todo, len(l.Todos))}
	copy(clone.Todos, l.Todos)
	return clone
}

// CloneLists returns a deep copy of a list collection. The result shares no
// memory with the input, so either side can mutate freely.
func CloneLists(lists []*TodoList) []*TodoList {
	clones := make([]*TodoList, len(lists))
	for i, l := range lists {
		clones[i] = l.Clone()
	}
	return clones
}
