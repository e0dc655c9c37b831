package log

import "context"

type windowIDKey struct{}

// WithWindowID tags ctx so every log line emitted with it carries the window id.
func WithWindowID(ctx context.Context, windowID string) context.Context {
	return context.WithValue(ctx, windowIDKey{}, windowID)
}
