package core

import "testing"

func titles(lists []*TodoList) []string {
	out := make([]string, len(lists))
	for i, l := range lists {
		out[i] = l.Title
	}
	return out
}

func TestSortTodoListsPartitionAndOrder(t *testing.T) {
	lists := []*TodoList{
		{ID: 1, Title: "zeta", Todos: []Todo{{ID: 1, Title: "t", Done: true}}},
		{ID: 2, Title: "Alpha", Todos: []Todo{{ID: 1, Title: "t"}}},
		{ID: 3, Title: "beta"}, // empty counts as incomplete
		{ID: 4, Title: "Gamma", Todos: []Todo{{ID: 1, Title: "t", Done: true}}},
	}
	sorted := SortTodoLists(lists)
	got := titles(sorted)
	want := []string{"Alpha", "beta", "Gamma", "zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: got %v, want %v", got, want)
		}
	}
	// input order untouched
	if lists[0].Title != "zeta" {
		t.Fatalf("input was reordered: %v", titles(lists))
	}
}

func TestSortTodoListsReturnsCopies(t *testing.T) {
	lists := []*TodoList{{ID: 1, Title: "Work", Todos: []Todo{{ID: 1, Title: "A"}}}}
	sorted := SortTodoLists(lists)
	sorted[0].Todos[0].Done = true
	if lists[0].Todos[0].Done {
		t.Fatalf("sorted result aliases the input")
	}
}

func TestSortTodosUndoneFirst(t *testing.T) {
	list := &TodoList{ID: 1, Title: "Work", Todos: []Todo{
		{ID: 1, Title: "A", Done: false},
		{ID: 2, Title: "B", Done: true},
	}}
	sorted := SortTodos(list)
	if len(sorted) != 2 || sorted[0].Title != "A" || sorted[1].Title != "B" {
		t.Fatalf("expected [A B], got %#v", sorted)
	}
}

func TestSortTodosCaseInsensitiveWithinGroup(t *testing.T) {
	list := &TodoList{ID: 1, Title: "Work", Todos: []Todo{
		{ID: 1, Title: "banana"},
		{ID: 2, Title: "Apple"},
		{ID: 3, Title: "cherry", Done: true},
		{ID: 4, Title: "Avocado", Done: true},
	}}
	sorted := SortTodos(list)
	want := []string{"Apple", "banana", "Avocado", "cherry"}
	for i, w := range want {
		if sorted[i].Title != w {
			t.Fatalf("unexpected order at %d: got %q, want %q", i, sorted[i].Title, w)
		}
	}
}
