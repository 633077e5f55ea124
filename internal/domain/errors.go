package domain

import "errors"

// ErrNotFound is returned by repositories when a document does not exist.
// Callers decide how to surface it; repositories never translate it themselves.
var ErrNotFound = errors.New("not found")

// ValidationError aggregates every failing field of a write, not just the first.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string { return e.Message }

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
