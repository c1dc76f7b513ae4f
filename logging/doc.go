// Package logging provides a minimal logging interface and adapters for TodoMesh.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the façade and the store implementations use for
// observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - TodoMeshLogger with session context and store-operation helpers
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	mesh := todomesh.New(func(o *todomesh.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
