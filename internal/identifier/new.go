package identifier

import (
	"table-checkbox-sync/internal/checkbox"
	pkgLog "table-checkbox-sync/pkg/log"
)

const (
	// DefaultLength gives 48 random bits per identifier.
	DefaultLength = 8
	// MinLength is the shortest identifier Allocate will produce.
	MinLength = 6
	// MaxLength is bounded by the random bits available in one UUID.
	MaxLength = 20

	// Alphabet is the URL-safe base64 alphabet; every character is valid
	// inside a quoted HTML attribute and none can form checkbox markup.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// Generator returns a candidate identifier.
type Generator func() (string, error)

// Allocator hands out identifiers unique within a document's current text.
type Allocator struct {
	l        pkgLog.Logger
	generate Generator
	skeleton string
}

// Option customizes an Allocator.
type Option func(*Allocator)

// WithGenerator replaces the random generator, e.g. to force collisions in tests.
func WithGenerator(g Generator) Option {
	return func(a *Allocator) { a.generate = g }
}

// New creates an Allocator producing identifiers of the given length.
// Lengths outside [MinLength, MaxLength] fall back to DefaultLength.
func New(l pkgLog.Logger, length int, opts ...Option) *Allocator {
	if length < MinLength || length > MaxLength {
		length = DefaultLength
	}
	a := &Allocator{
		l:        l,
		generate: RandomGenerator(length),
		skeleton: checkbox.TokenToControl(""),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
