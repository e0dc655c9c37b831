package checkbox

// Token is a checkbox markup substring recognized inside a table row.
type Token struct {
	Text  string // Matched text, e.g. "- [ ]"
	Start int    // Byte offset of the first character in the line
	End   int    // Byte offset just past the last character
}

// Len returns the byte length of the matched text.
func (t Token) Len() int { return t.End - t.Start }

// Control is a control tag found in a document.
type Control struct {
	ID      string
	Checked bool
	Line    int // Zero-based line index
	Raw     string
}

// Stats summarizes the controls of a document.
type Stats struct {
	Total     int     // Total controls
	Completed int     // Checked controls
	Pending   int     // Unchecked controls
	Progress  float64 // Completion percentage (0-100)
}
