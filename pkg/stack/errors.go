package stack

import "errors"

var (
	// ErrClosed is returned by operations on a manager that has been shut
	// down.
	ErrClosed = errors.New("stack: manager is closed")

	// ErrNotFound is returned when a toast ID is neither visible nor
	// pending.
	ErrNotFound = errors.New("stack: toast not found")
)
