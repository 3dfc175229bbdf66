package domain

import "errors"

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")
