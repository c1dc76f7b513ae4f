// Package session houses concrete implementations of the core.SessionStore.
// The interface itself (and the Session struct) live in the core package to
// centralize domain contracts. Keeping only implementations here prevents
// higher level packages from depending on concrete storage.
//
// Add additional backends (Redis, Postgres, encrypted cookies, etc.) in
// sub-packages without changing any calling code - only the wiring layer
// needs to decide which implementation to instantiate.
package session
