package parse

import "errors"

var (
	// ErrSyntax covers unbalanced delimiters, a close with no
	// enclosing container, and stray text right after a parsed child.
	ErrSyntax = errors.New("syntax error")

	// ErrReference is returned when an alias name resolves to no
	// ancestor-visible container.
	ErrReference = errors.New("reference error")

	// ErrInvalidField is returned when pending text is neither a
	// quoted string, a bare field, nor an alias.
	ErrInvalidField = errors.New("invalid field")
)
