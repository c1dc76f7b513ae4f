package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultListsIsolation(t *testing.T) {
	first := DefaultLists()
	require.NotEmpty(t, first)
	first[0].Title = "mutated"
	first[0].Todos[0].Done = true

	second := DefaultLists()
	assert.Equal(t, "Groceries", second[0].Title)
	assert.False(t, second[0].Todos[0].Done)
}

func TestDefaultListsValid(t *testing.T) {
	assert.NoError(t, validate(defaultLists))
}

func TestLoadValidYAML(t *testing.T) {
	data := []byte(`
- id: 1
  title: Errands
  todos:
    - id: 1
      title: Post office
      done: true
    - id: 2
      title: Pharmacy
- id: 2
  title: Reading
  todos: []
`)
	lists, err := Load(data)
	require.NoError(t, err)
	require.Len(t, lists, 2)
	assert.Equal(t, "Errands", lists[0].Title)
	require.Len(t, lists[0].Todos, 2)
	assert.True(t, lists[0].Todos[0].Done)
	assert.False(t, lists[0].Todos[1].Done)
	assert.Empty(t, lists[1].Todos)
}

func TestLoadRejectsInvalidDatasets(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"duplicate list id", "- id: 1\n  title: A\n- id: 1\n  title: B\n"},
		{"duplicate title", "- id: 1\n  title: A\n- id: 2\n  title: A\n"},
		{"empty title", "- id: 1\n  title: \"\"\n"},
		{"non-positive list id", "- id: 0\n  title: A\n"},
		{"duplicate todo id", "- id: 1\n  title: A\n  todos:\n    - id: 1\n      title: x\n    - id: 1\n      title: y\n"},
		{"empty todo title", "- id: 1\n  title: A\n  todos:\n    - id: 1\n      title: \"\"\n"},
		{"malformed yaml", "{not a list"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load([]byte(tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: 1\n  title: Only\n"), 0o644))

	lists, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Only", lists[0].Title)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
