// Package todostore contains concrete implementations of the core.TodoStore.
//
// The canonical TodoStore interface lives in the core package to avoid
// dependency cycles and keep domain contracts central. Implementation
// packages like this one (session state today, a relational database later)
// provide data-access backends that can be swapped without touching calling
// code.
//
// Callers should depend on the core interface rather than concrete types so
// they can substitute alternative backends in tests or production.
package todostore
