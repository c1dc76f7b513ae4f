package seed

import "github.com/hupe1980/todomesh/core"

// defaultLists is the built-in dataset. Never handed out directly; callers
// always receive a deep copy so stored seed data cannot be mutated.
var defaultLists = []*core.TodoList{
	{
		ID:    1,
		Title: "Groceries",
		Todos: []core.Todo{
			{ID: 1, Title: "Milk", Done: false},
			{ID: 2, Title: "Bread", Done: true},
			{ID: 3, Title: "Eggs", Done: false},
		},
	},
	{
		ID:    2,
		Title: "Work",
		Todos: []core.Todo{
			{ID: 1, Title: "Prepare standup notes", Done: false},
			{ID: 2, Title: "Review pull requests", Done: false},
		},
	},
	{
		ID:    3,
		Title: "Vacation",
		Todos: []core.Todo{},
	},
}

// DefaultLists returns a deep copy of the built-in seed dataset.
func DefaultLists() []*core.TodoList {
	return core.CloneLists(defaultLists)
}
