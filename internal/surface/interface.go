package surface

import (
	"context"

	"table-checkbox-sync/internal/model"
)

// Surface is one live editing view over a document.
type Surface interface {
	// DocumentID names the document shown by the surface.
	DocumentID() string

	// Cursor returns the current cursor position.
	Cursor() model.Position

	// SetCursor moves the cursor.
	SetCursor(pos model.Position)

	// ReplaceRange replaces the text between from and to.
	ReplaceRange(ctx context.Context, from, to model.Position, text string) error

	// Drain returns and clears the edits applied since the last call.
	Drain() []model.Edit
}
