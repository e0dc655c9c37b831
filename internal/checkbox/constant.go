package checkbox

const (
	// TokenPattern matches the markup checkbox: '-', an optional whitespace,
	// '[', an optional whitespace, ']'.
	// Example: "- [ ]", "-[]", "- []", "-[ ]"
	TokenPattern = `-\s?\[\s?\]`

	// ControlPattern matches a control tag emitted by TokenToControl and
	// captures its state marker and identifier.
	// Example: `<input type="checkbox" unchecked id="k3Jd_9aZ">` → ["unchecked", "k3Jd_9aZ"]
	ControlPattern = `<input\s+type="checkbox"\s+(checked|unchecked)\s+id="([A-Za-z0-9_-]+)"\s*/?>`

	// MarkerChecked and MarkerUnchecked are the state words carried by a control tag.
	MarkerChecked   = "checked"
	MarkerUnchecked = "unchecked"

	// ClosingChar completes a checkbox token.
	ClosingChar = "]"

	cellDelimiter = '|'
	escapeChar    = '\\'
	controlFormat = `<input type="checkbox" %s id="%s">`
)
