package usecase

import (
	"context"
	"errors"

	"table-checkbox-sync/internal/correlator"
	"table-checkbox-sync/internal/model"
	"table-checkbox-sync/internal/window"
	pkgLog "table-checkbox-sync/pkg/log"
)

// Input moves the cursor to input.Position and emits the insertion.
func (uc *implUseCase) Input(ctx context.Context, input window.InputInput) (window.EventOutput, error) {
	s, err := uc.session(input.WindowID)
	if err != nil {
		return window.EventOutput{}, err
	}
	if input.Text == "" || input.Position.Line < 0 || input.Position.Ch < 0 {
		return window.EventOutput{}, window.ErrInvalidEvent
	}

	ctx = pkgLog.WithWindowID(ctx, s.id)
	s.buffer.SetCursor(input.Position)
	handled, err := s.emitter.EmitInsert(ctx, model.InsertEvent{Text: input.Text, Position: input.Position})
	if err != nil && !errors.Is(err, correlator.ErrStoreWrite) {
		uc.l.Warnf(ctx, "window.usecase.Input: %v", err)
		return window.EventOutput{}, err
	}
	return uc.output(s, handled), nil
}

// Change emits a state change of the control described by input.
func (uc *implUseCase) Change(ctx context.Context, input window.ChangeInput) (window.EventOutput, error) {
	s, err := uc.session(input.WindowID)
	if err != nil {
		return window.EventOutput{}, err
	}
	if input.Tag == "" {
		return window.EventOutput{}, window.ErrInvalidEvent
	}

	ctx = pkgLog.WithWindowID(ctx, s.id)
	target := model.Control{
		Tag:        input.Tag,
		Attributes: input.Attributes,
		IsChecked:  input.Checked,
		HTML:       input.HTML,
	}
	handled, err := s.emitter.EmitChange(ctx, model.ChangeEvent{Target: target})
	if err != nil && !errors.Is(err, correlator.ErrStoreWrite) {
		uc.l.Warnf(ctx, "window.usecase.Change: %v", err)
		return window.EventOutput{}, err
	}
	return uc.output(s, handled), nil
}

func (uc *implUseCase) output(s *session, handled bool) window.EventOutput {
	return window.EventOutput{
		Handled: handled,
		Edits:   s.buffer.Drain(),
		Cursor:  s.buffer.Cursor(),
		Notices: s.notices.drain(),
	}
}
