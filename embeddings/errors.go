package embeddings

import "errors"

var (
	// ErrInvalidMaxAttempts is returned when a retry is requested with a
	// non-positive attempt budget.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than zero")
)
