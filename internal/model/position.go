package model

// Position is a cursor location. Ch counts UTF-16 code units, matching the
// addressing of browser-hosted editors.
type Position struct {
	Line int `json:"line"`
	Ch   int `json:"ch"`
}

// Edit is one range replacement applied to an editing surface.
type Edit struct {
	From Position `json:"from"`
	To   Position `json:"to"`
	Text string   `json:"text"`
}
