package correlator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"table-checkbox-sync/internal/checkbox"
	"table-checkbox-sync/internal/model"
)

// HandleChange applies a rendered control's new checked state to the
// document and reports whether the text was written. Native task-list
// checkboxes and controls this system did not create are ignored, as is a
// control whose tag has left the document.
func (c *ToggleCorrelator) HandleChange(ctx context.Context, ev model.ChangeEvent) (bool, error) {
	id, ok := c.identify(ev.Target)
	if !ok {
		return false, nil
	}
	checked := ev.Target.Checked()

	var written bool
	err := c.guard.Do(c.docID, func() error {
		text, err := c.store.ReadWholeText(ctx, c.docID)
		if err != nil {
			return fmt.Errorf("%s: read document: %w", LogPrefixToggle, err)
		}

		next, err := checkbox.ToggleControlState(text, id, checked)
		if errors.Is(err, checkbox.ErrIdentifierNotFound) {
			c.l.Debugf(ctx, "%s: control %s no longer in %s", LogPrefixToggle, id, c.docID)
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", LogPrefixToggle, err)
		}
		if next == text {
			return nil
		}

		if err := c.store.WriteWholeText(ctx, c.docID, next); err != nil {
			if c.notifier != nil {
				c.notifier.Notify(ctx, model.Notice{
					Kind:       model.NoticeStoreWriteFailure,
					Message:    fmt.Sprintf("Could not save the checkbox state: %v", err),
					DocumentID: c.docID,
				})
			}
			return fmt.Errorf("%s: %w: %w", LogPrefixToggle, ErrStoreWrite, err)
		}

		written = true
		c.l.Infof(ctx, "%s: control %s in %s set checked=%v", LogPrefixToggle, id, c.docID, checked)
		return nil
	})
	return written, err
}

// identify filters the event target and returns its embedded identifier.
func (c *ToggleCorrelator) identify(el model.Element) (string, bool) {
	if el == nil || el.TagName() != "input" {
		return "", false
	}
	if typ, _ := el.Attribute("type"); !strings.EqualFold(typ, "checkbox") {
		return "", false
	}
	if _, native := el.Attribute(c.nativeMarker); native {
		return "", false
	}

	if id, ok := el.Attribute("id"); ok && id != "" {
		return id, true
	}
	if h, ok := el.(outerHTMLer); ok {
		if id, err := checkbox.ExtractIdentifier(h.OuterHTML()); err == nil {
			return id, true
		}
	}
	return "", false
}
