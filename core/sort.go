package core

import (
	"sort"
	"strings"
)

// SortTodoLists returns a deep copy of the lists partitioned into open and
// completed groups: every list that still has undone todos (or no todos at
// all) precedes every fully-done list. Within each group titles are ordered
// case-insensitively. The input is never mutated.
func SortTodoLists(lists []*TodoList) []*TodoList {
	var open, done []*TodoList
	for _, l := range lists {
		if l.IsDone() {
			done = append(done, l.Clone())
		} else {
			open = append(open, l.Clone())
		}
	}
	sortListsByTitle(open)
	sortListsByTitle(done)
	return append(open, done...)
}

// SortTodos returns a deep copy of one list's todos under the same policy:
// undone todos first, done todos last, titles ordered case-insensitively
// within each group.
func SortTodos(list *TodoList) []Todo {
	var open, done []Todo
	for _, t := range list.Todos {
		if t.Done {
			done = append(done, t.Clone())
		} else {
			open = append(open, t.Clone())
		}
	}
	sortTodosByTitle(open)
	sortTodosByTitle(done)
	return append(open, done...)
}

func sortListsByTitle(lists []*TodoList) {
	sort.SliceStable(lists, func(i, j int) bool {
		return strings.ToLower(lists[i].Title) < strings.ToLower(lists[j].Title)
	})
}

func sortTodosByTitle(todos []Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		return strings.ToLower(todos[i].Title) < strings.ToLower(todos[j].Title)
	})
}
