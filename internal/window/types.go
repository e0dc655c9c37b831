package window

import (
	"table-checkbox-sync/internal/correlator"
	"table-checkbox-sync/internal/events"
	"table-checkbox-sync/internal/model"
	"table-checkbox-sync/internal/surface"
)

// Window is one open editing surface and the event stream it produces.
type Window struct {
	ID       string
	Surface  surface.Surface
	Events   events.Source
	Notifier correlator.Notifier
}

// Config holds the correlator settings shared by every window.
type Config struct {
	Strategy     correlator.Strategy
	NativeMarker string
}

type OpenInput struct {
	DocumentID string
	Text       *string // Replaces the document content when set
}

type OpenOutput struct {
	WindowID   string
	DocumentID string
}

type InputInput struct {
	WindowID string
	Text     string
	Position model.Position
}

type ChangeInput struct {
	WindowID   string
	Tag        string
	Attributes map[string]string
	Checked    bool
	HTML       string
}

// EventOutput is what the host needs to mirror after one event.
type EventOutput struct {
	Handled bool
	Edits   []model.Edit
	Cursor  model.Position
	Notices []model.Notice
}

// SyncInput carries the host's current text for the window's document.
type SyncInput struct {
	WindowID string
	Text     string
}

type DocumentOutput struct {
	DocumentID string
	Text       string
	Revision   int // 0 when the store does not track revisions
}
