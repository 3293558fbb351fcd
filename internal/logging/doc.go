// Package logging provides a unified logging interface for the engine's
// ambient components (configuration resolution, threshold profiles).
// It abstracts the underlying logging implementation, allowing consistent
// logging while supporting multiple backends.
package logging
