package checkbox

import "errors"

var (
	// ErrNotFound means no checkbox token or control tag matched. Callers treat it as "nothing to do".
	ErrNotFound = errors.New("checkbox: no match")
	// ErrIdentifierNotFound means no control tag carries the requested identifier.
	ErrIdentifierNotFound = errors.New("checkbox: identifier not found")
)
