// Package core provides the foundational domain types and contracts used by
// TodoMesh. It defines:
//
//   - Todos and TodoLists (task items grouped into named, ordered lists)
//   - Sessions (per-user containers owning a list collection)
//   - Pluggable store contracts (TodoStore, SessionStore) with a single
//     ErrNotFound failure mode
//   - The shared sorting policy (incomplete before complete, titles ordered
//     case-insensitively within each group)
//   - Deep-copy clone helpers so callers never alias internal state
//
// The package intentionally keeps implementation concerns (session storage,
// the concrete data-access layer, seed data) out of scope, exposing small
// interfaces so backends can be swapped without touching calling code.
package core
