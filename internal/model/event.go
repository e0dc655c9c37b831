package model

import "strings"

// InsertEvent reports text typed into an editing surface.
type InsertEvent struct {
	Text     string   // Inserted text, normally one character
	Position Position // Cursor reported by the host with the event
}

// Element is the read-only view of a DOM element targeted by an event.
type Element interface {
	TagName() string
	Attribute(name string) (string, bool)
	Checked() bool
}

// ChangeEvent reports a state change of a rendered control.
type ChangeEvent struct {
	Target Element
}

// Control is a concrete Element, built from a host payload.
type Control struct {
	Tag        string
	Attributes map[string]string
	IsChecked  bool
	HTML       string // Outer HTML, when the host sends it
}

var _ Element = Control{}

// TagName returns the lower-cased tag name.
func (c Control) TagName() string { return strings.ToLower(c.Tag) }

// Attribute returns the named attribute. Names are matched case-insensitively.
func (c Control) Attribute(name string) (string, bool) {
	if v, ok := c.Attributes[name]; ok {
		return v, true
	}
	for k, v := range c.Attributes {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// Checked reports the control's live checked state.
func (c Control) Checked() bool { return c.IsChecked }

// OuterHTML returns the element markup sent by the host, if any.
func (c Control) OuterHTML() string { return c.HTML }
