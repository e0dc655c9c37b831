package surface

import (
	"context"
	"fmt"
	"sync"

	"table-checkbox-sync/internal/checkbox"
	"table-checkbox-sync/internal/document"
	"table-checkbox-sync/internal/model"
	"table-checkbox-sync/pkg/utf16x"
)

// Buffer is a Surface whose text lives in a document.Store. Each range
// replacement is computed locally and committed as one whole-text write,
// then journaled so a remote host can replay it on its own view.
type Buffer struct {
	store document.Store
	docID string

	mu      sync.Mutex
	cursor  model.Position
	journal []model.Edit
}

var _ Surface = (*Buffer)(nil)

// NewBuffer creates a surface over docID.
func NewBuffer(store document.Store, docID string) *Buffer {
	return &Buffer{store: store, docID: docID}
}

func (b *Buffer) DocumentID() string { return b.docID }

func (b *Buffer) Cursor() model.Position {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursor
}

func (b *Buffer) SetCursor(pos model.Position) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursor = pos
}

func (b *Buffer) ReplaceRange(ctx context.Context, from, to model.Position, text string) error {
	current, err := b.store.ReadWholeText(ctx, b.docID)
	if err != nil {
		return err
	}

	start, err := ByteOffset(current, from)
	if err != nil {
		return err
	}
	end, err := ByteOffset(current, to)
	if err != nil {
		return err
	}
	if end < start {
		return fmt.Errorf("surface: inverted range %+v..%+v", from, to)
	}

	next := checkbox.ReplaceRange(current, start, end, text)
	if err := b.store.WriteWholeText(ctx, b.docID, next); err != nil {
		return err
	}

	b.mu.Lock()
	b.journal = append(b.journal, model.Edit{From: from, To: to, Text: text})
	b.mu.Unlock()
	return nil
}

func (b *Buffer) Drain() []model.Edit {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.journal
	b.journal = nil
	return out
}

// ByteOffset resolves pos to a byte offset into text. Ch past the end of
// the line clamps to the line end.
func ByteOffset(text string, pos model.Position) (int, error) {
	start, end, err := document.LineBounds(text, pos.Line)
	if err != nil {
		return 0, err
	}
	return start + utf16x.ByteOffset(text[start:end], pos.Ch), nil
}
