package correlator

import (
	"context"
	"errors"
	"fmt"

	"table-checkbox-sync/internal/checkbox"
	"table-checkbox-sync/internal/model"
	"table-checkbox-sync/pkg/utf16x"
)

// State returns the state of the event in flight; Idle between events.
func (c *InputCorrelator) State() State { return c.state }

// HandleInsert evaluates one insertion. It reports whether a checkbox token
// was rewritten into a control. A line that no longer carries markup never
// matches, so re-evaluation cannot convert twice.
func (c *InputCorrelator) HandleInsert(ctx context.Context, ev model.InsertEvent) (bool, error) {
	if ev.Text != checkbox.ClosingChar {
		return false, nil
	}

	c.state = StateEvaluating
	defer func() { c.state = StateIdle }()

	docID := c.surface.DocumentID()
	var converted bool
	err := c.guard.Do(docID, func() error {
		var err error
		converted, err = c.convert(ctx, docID, ev.Position)
		return err
	})
	return converted, err
}

func (c *InputCorrelator) convert(ctx context.Context, docID string, pos model.Position) (bool, error) {
	stored, err := c.store.ReadLine(ctx, docID, pos.Line)
	if err != nil {
		return false, fmt.Errorf("%s: read line %d: %w", LogPrefixInput, pos.Line, err)
	}

	// line is the text with ']' in place; cursor is the byte offset just after it.
	line, cursor := stored, utf16x.ByteOffset(stored, pos.Ch)
	if c.strategy == StrategyPending {
		line = checkbox.ReplaceRange(stored, cursor, cursor, checkbox.ClosingChar)
		cursor += len(checkbox.ClosingChar)
	}

	if !checkbox.IsCheckboxInTableRow(line) {
		return false, nil
	}
	tok, err := checkbox.TokenEndingAt(line, cursor)
	if errors.Is(err, checkbox.ErrNotFound) {
		c.l.Debugf(ctx, "%s: table row at line %d has no token ending at the cursor", LogPrefixInput, pos.Line)
		return false, nil
	}

	text, err := c.store.ReadWholeText(ctx, docID)
	if err != nil {
		return false, fmt.Errorf("%s: read document: %w", LogPrefixInput, err)
	}
	id, err := c.allocator.Allocate(ctx, text)
	if err != nil {
		return false, fmt.Errorf("%s: allocate identifier: %w", LogPrefixInput, err)
	}
	control := checkbox.TokenToControl(id)

	c.state = StateRewriting

	// In pending mode the ']' is not in the store yet, so the stored range
	// stops one byte short of the token end.
	end := tok.End
	if c.strategy == StrategyPending {
		end -= len(checkbox.ClosingChar)
	}
	from := model.Position{Line: pos.Line, Ch: utf16x.Offset(stored, tok.Start)}
	to := model.Position{Line: pos.Line, Ch: utf16x.Offset(stored, end)}

	if err := c.surface.ReplaceRange(ctx, from, to, control); err != nil {
		c.notify(ctx, docID, err)
		return false, fmt.Errorf("%s: %w: %w", LogPrefixInput, ErrStoreWrite, err)
	}
	c.surface.SetCursor(model.Position{Line: pos.Line, Ch: from.Ch + utf16x.Len(control)})

	c.l.Infof(ctx, "%s: converted %q at %s:%d into control %s", LogPrefixInput, tok.Text, docID, pos.Line, id)
	return true, nil
}

func (c *InputCorrelator) notify(ctx context.Context, docID string, err error) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(ctx, model.Notice{
		Kind:       model.NoticeStoreWriteFailure,
		Message:    fmt.Sprintf("Could not convert the checkbox: %v", err),
		DocumentID: docID,
	})
}
