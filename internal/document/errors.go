package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrLineOutOfRange   = errors.New("line index out of range")
	ErrInvalidID        = errors.New("invalid document id")
)
