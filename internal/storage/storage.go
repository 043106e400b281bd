package storage

import "errors"

// Error taxonomy shared by every repository. Callers must be able to
// tell these apart; raw driver errors never cross the service boundary.
var (
	ErrNotFound    = errors.New("record not found")
	ErrConflict    = errors.New("duplicate unique key")
	ErrUnavailable = errors.New("storage unavailable")
)
