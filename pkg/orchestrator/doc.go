// Package orchestrator wires the loader -> parser -> converter -> renderer
// pipeline, providing dependency injection friendly helpers for consumers
// that prefer a single entry point.
package orchestrator
