package document

import (
	"fmt"
	"strings"
)

// LineAt extracts line lineIndex from text. Both "\n" and "\r\n" endings are
// accepted; the terminator is not part of the returned line.
func LineAt(text string, lineIndex int) (string, error) {
	if lineIndex < 0 {
		return "", fmt.Errorf("%w: %d", ErrLineOutOfRange, lineIndex)
	}
	rest := text
	for i := 0; i < lineIndex; i++ {
		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			return "", fmt.Errorf("%w: %d", ErrLineOutOfRange, lineIndex)
		}
		rest = rest[nl+1:]
	}
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}
	return strings.TrimSuffix(rest, "\r"), nil
}

// LineBounds returns the byte range [start, end) of line lineIndex in text,
// excluding its terminator.
func LineBounds(text string, lineIndex int) (int, int, error) {
	if lineIndex < 0 {
		return 0, 0, fmt.Errorf("%w: %d", ErrLineOutOfRange, lineIndex)
	}
	start := 0
	for i := 0; i < lineIndex; i++ {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			return 0, 0, fmt.Errorf("%w: %d", ErrLineOutOfRange, lineIndex)
		}
		start += nl + 1
	}
	end := len(text)
	if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
		end = start + nl
	}
	if end > start && text[end-1] == '\r' {
		end--
	}
	return start, end, nil
}
