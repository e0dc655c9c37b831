package usecase

import (
	"context"

	"table-checkbox-sync/internal/checkbox"
	"table-checkbox-sync/internal/document"
	"table-checkbox-sync/internal/window"
	pkgLog "table-checkbox-sync/pkg/log"
)

func (uc *implUseCase) Document(ctx context.Context, windowID string) (window.DocumentOutput, error) {
	s, err := uc.session(windowID)
	if err != nil {
		return window.DocumentOutput{}, err
	}

	var out window.DocumentOutput
	err = uc.registry.Guard().Do(s.buffer.DocumentID(), func() error {
		out, err = uc.snapshot(ctx, s.buffer.DocumentID())
		return err
	})
	return out, err
}

// Sync writes the host text under the document lock, so it never lands in
// the middle of a conversion or toggle.
func (uc *implUseCase) Sync(ctx context.Context, input window.SyncInput) (window.DocumentOutput, error) {
	s, err := uc.session(input.WindowID)
	if err != nil {
		return window.DocumentOutput{}, err
	}

	ctx = pkgLog.WithWindowID(ctx, s.id)
	docID := s.buffer.DocumentID()
	var out window.DocumentOutput
	err = uc.registry.Guard().Do(docID, func() error {
		if err := uc.store.WriteWholeText(ctx, docID, input.Text); err != nil {
			return err
		}
		out, err = uc.snapshot(ctx, docID)
		return err
	})
	if err != nil {
		uc.l.Errorf(ctx, "window.usecase.Sync: %s: %v", docID, err)
		return window.DocumentOutput{}, err
	}
	return out, nil
}

// snapshot reads the text and, when the store tracks it, the revision.
// Callers hold the document lock.
func (uc *implUseCase) snapshot(ctx context.Context, docID string) (window.DocumentOutput, error) {
	text, err := uc.store.ReadWholeText(ctx, docID)
	if err != nil {
		return window.DocumentOutput{}, err
	}
	out := window.DocumentOutput{DocumentID: docID, Text: text}
	if v, ok := uc.store.(document.Versioned); ok {
		if out.Revision, err = v.Revision(ctx, docID); err != nil {
			return window.DocumentOutput{}, err
		}
	}
	return out, nil
}

// Stats counts the controls of the window's document.
func (uc *implUseCase) Stats(ctx context.Context, windowID string) (checkbox.Stats, error) {
	doc, err := uc.Document(ctx, windowID)
	if err != nil {
		return checkbox.Stats{}, err
	}
	return checkbox.GetStats(doc.Text), nil
}
