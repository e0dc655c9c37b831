package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"table-checkbox-sync/internal/correlator"
	"table-checkbox-sync/internal/document"
	"table-checkbox-sync/internal/events"
	"table-checkbox-sync/internal/model"
	"table-checkbox-sync/internal/surface"
	"table-checkbox-sync/internal/window"
	pkgLog "table-checkbox-sync/pkg/log"
)

// Open starts a window on input.DocumentID. A missing document is created empty.
func (uc *implUseCase) Open(ctx context.Context, input window.OpenInput) (window.OpenOutput, error) {
	if input.DocumentID == "" {
		return window.OpenOutput{}, fmt.Errorf("%w: document_id is required", window.ErrInvalidInput)
	}

	err := uc.registry.Guard().Do(input.DocumentID, func() error {
		return uc.prepare(ctx, input)
	})
	if err != nil {
		uc.l.Errorf(ctx, "window.usecase.Open: prepare %s: %v", input.DocumentID, err)
		return window.OpenOutput{}, err
	}

	s := &session{
		id:      uuid.NewString(),
		buffer:  surface.NewBuffer(uc.store, input.DocumentID),
		emitter: events.NewEmitter(),
		notices: &noticeQueue{},
	}

	ctx = pkgLog.WithWindowID(ctx, s.id)
	if _, err := uc.registry.Attach(ctx, window.Window{
		ID:       s.id,
		Surface:  s.buffer,
		Events:   s.emitter,
		Notifier: correlator.NotifierFunc(func(ctx context.Context, n model.Notice) {
			uc.l.Warnf(ctx, "window.usecase: notice %s on %s: %s", n.Kind, n.DocumentID, n.Message)
			s.notices.Notify(ctx, n)
		}),
	}); err != nil {
		uc.l.Errorf(ctx, "window.usecase.Open: attach: %v", err)
		return window.OpenOutput{}, err
	}

	uc.mu.Lock()
	uc.sessions[s.id] = s
	uc.mu.Unlock()

	return window.OpenOutput{WindowID: s.id, DocumentID: input.DocumentID}, nil
}

func (uc *implUseCase) prepare(ctx context.Context, input window.OpenInput) error {
	if input.Text != nil {
		return uc.store.WriteWholeText(ctx, input.DocumentID, *input.Text)
	}
	_, err := uc.store.ReadWholeText(ctx, input.DocumentID)
	if errors.Is(err, document.ErrDocumentNotFound) {
		return uc.store.WriteWholeText(ctx, input.DocumentID, "")
	}
	return err
}

// Close detaches the window and drops its session.
func (uc *implUseCase) Close(ctx context.Context, windowID string) error {
	uc.mu.Lock()
	_, ok := uc.sessions[windowID]
	delete(uc.sessions, windowID)
	uc.mu.Unlock()

	if !ok {
		return window.ErrWindowNotFound
	}
	uc.registry.Detach(pkgLog.WithWindowID(ctx, windowID), windowID)
	return nil
}

func (uc *implUseCase) session(windowID string) (*session, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	s, ok := uc.sessions[windowID]
	if !ok {
		return nil, window.ErrWindowNotFound
	}
	return s, nil
}
