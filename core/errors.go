package core

import "errors"

var (
	// ErrNotFound is returned when a session, todo list or todo with the
	// given identifier does not exist in the underlying store. It is the
	// only error the in-memory backends produce.
	ErrNotFound = errors.New("entity not found")
)
