package correlator

import (
	"context"

	"table-checkbox-sync/internal/model"
)

// Allocator hands out identifiers unique within a document's text.
type Allocator interface {
	Allocate(ctx context.Context, currentText string) (string, error)
}

// Notifier shows a non-blocking notification to the user.
type Notifier interface {
	Notify(ctx context.Context, n model.Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n model.Notice)

func (f NotifierFunc) Notify(ctx context.Context, n model.Notice) { f(ctx, n) }

// outerHTMLer is implemented by elements that carry their markup.
type outerHTMLer interface {
	OuterHTML() string
}
