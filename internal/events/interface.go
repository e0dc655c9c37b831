package events

import (
	"context"

	"table-checkbox-sync/internal/model"
)

// InsertHandler handles a text-insertion event. It reports whether the event
// triggered a rewrite; a host that fires events before applying them must
// then drop the pending insertion.
type InsertHandler func(ctx context.Context, ev model.InsertEvent) (bool, error)

// ChangeHandler handles a control state-change event. It reports whether
// the event changed the document.
type ChangeHandler func(ctx context.Context, ev model.ChangeEvent) (bool, error)

// Source delivers the events of one editing surface. Each subscription
// returns the function that releases it.
type Source interface {
	OnInsert(h InsertHandler) (unsubscribe func())
	OnChange(h ChangeHandler) (unsubscribe func())
}
