package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/todomesh/core"
)

// listDocument is the YAML wire shape of one seed list. Kept separate from
// the core types so file format changes never leak into the domain model.
type listDocument struct {
	ID    int            `yaml:"id"`
	Title string         `yaml:"title"`
	Todos []todoDocument `yaml:"todos"`
}

type todoDocument struct {
	ID    int    `yaml:"id"`
	Title string `yaml:"title"`
	Done  bool   `yaml:"done"`
}

// Load parses a seed dataset from raw YAML and validates it.
func Load(data []byte) ([]*core.TodoList, error) {
	var docs []listDocument
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	lists := make([]*core.TodoList, 0, len(docs))
	for _, doc := range docs {
		list := &core.TodoList{ID: doc.ID, Title: doc.Title, Todos: make([]core.Todo, 0, len(doc.Todos))}
		for _, td := range doc.Todos {
			list.Todos = append(list.Todos, core.Todo{ID: td.ID, Title: td.Title, Done: td.Done})
		}
		lists = append(lists, list)
	}
	if err := validate(lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// LoadFile reads and parses a seed dataset from a YAML file.
func LoadFile(path string) ([]*core.TodoList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Load(data)
}

func validate(lists []*core.TodoList) error {
	listIDs := make(map[int]bool, len(lists))
	titles := make(map[string]bool, len(lists))
	for _, l := range lists {
		if l.ID <= 0 {
			return fmt.Errorf("seed list %q: id must be positive, got %d", l.Title, l.ID)
		}
		if l.Title == "" {
			return fmt.Errorf("seed list %d: title must not be empty", l.ID)
		}
		if listIDs[l.ID] {
			return fmt.Errorf("seed list %q: duplicate list id %d", l.Title, l.ID)
		}
		if titles[l.Title] {
			return fmt.Errorf("seed list %q: duplicate title", l.Title)
		}
		listIDs[l.ID] = true
		titles[l.Title] = true

		todoIDs := make(map[int]bool, len(l.Todos))
		for _, td := range l.Todos {
			if td.ID <= 0 {
				return fmt.Errorf("seed list %q: todo id must be positive, got %d", l.Title, td.ID)
			}
			if td.Title == "" {
				return fmt.Errorf("seed list %q: todo %d title must not be empty", l.Title, td.ID)
			}
			if todoIDs[td.ID] {
				return fmt.Errorf("seed list %q: duplicate todo id %d", l.Title, td.ID)
			}
			todoIDs[td.ID] = true
		}
	}
	return nil
}
