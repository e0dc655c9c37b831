package checkbox

import (
	"fmt"
	"regexp"
)

// TokenToControl formats an unchecked control tag carrying id.
func TokenToControl(id string) string {
	return fmt.Sprintf(controlFormat, MarkerUnchecked, id)
}

// ReplaceRange splices replacement into line over the byte range [start, end).
// Offsets are clamped to the line.
func ReplaceRange(line string, start, end int, replacement string) string {
	start = clamp(start, 0, len(line))
	end = clamp(end, start, len(line))
	return line[:start] + replacement + line[end:]
}

// ToggleControlState rewrites the state marker of the first control tag
// carrying id and leaves every other byte of text untouched.
func ToggleControlState(text, id string, checked bool) (string, error) {
	if id == "" {
		return text, ErrIdentifierNotFound
	}
	re, err := regexp.Compile(`<input\s+type="checkbox"\s+(checked|unchecked)\s+id="` + regexp.QuoteMeta(id) + `"\s*/?>`)
	if err != nil {
		return text, fmt.Errorf("checkbox: compile identifier pattern: %w", err)
	}

	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, ErrIdentifierNotFound
	}

	marker := MarkerUnchecked
	if checked {
		marker = MarkerChecked
	}
	return ReplaceRange(text, loc[2], loc[3], marker), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
