package ir

import "errors"

var (
	// ErrUsage is returned for indexed, named, or count access on a
	// leaf node.
	ErrUsage = errors.New("usage error")

	// ErrKey is returned when a declared name, container or alias, is
	// empty or already present in the enclosing name table.
	ErrKey = errors.New("key error")

	// ErrValue is returned when numeric conversion is requested on
	// non-numeric leaf text.
	ErrValue = errors.New("value error")
)
