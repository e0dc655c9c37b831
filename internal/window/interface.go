package window

import (
	"context"

	"table-checkbox-sync/internal/checkbox"
)

// UseCase drives editing sessions from an external host.
type UseCase interface {
	// Open starts a window on a document and attaches the checkbox correlators to it.
	Open(ctx context.Context, input OpenInput) (OpenOutput, error)
	// Close detaches and forgets a window.
	Close(ctx context.Context, windowID string) error

	// Input delivers one text insertion to the window.
	Input(ctx context.Context, input InputInput) (EventOutput, error)
	// Change delivers one control state change to the window.
	Change(ctx context.Context, input ChangeInput) (EventOutput, error)

	// Sync replaces the window's document with the text shown by the host.
	// Hosts call it after edits the correlators did not make, so that an
	// insertion is evaluated against the line the user sees.
	Sync(ctx context.Context, input SyncInput) (DocumentOutput, error)
	Document(ctx context.Context, windowID string) (DocumentOutput, error)
	Stats(ctx context.Context, windowID string) (checkbox.Stats, error)
}
