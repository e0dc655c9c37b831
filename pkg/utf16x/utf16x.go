// Package utf16x converts between UTF-16 code-unit offsets, as reported by
// browser-based editors, and byte offsets into Go strings.
package utf16x

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Len returns the length of s in UTF-16 code units.
func Len(s string) int {
	n := 0
	for _, r := range s {
		n += units(r)
	}
	return n
}

// ByteOffset returns the byte offset in s that corresponds to the given
// UTF-16 code-unit offset. Offsets past the end clamp to len(s); an offset
// landing inside a surrogate pair resolves to the start of that rune.
func ByteOffset(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	n := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		w := units(r)
		if n+w > offset {
			return i
		}
		n += w
		i += size
		if n == offset {
			return i
		}
	}
	return len(s)
}

// Offset returns the UTF-16 code-unit offset of byte position b in s.
func Offset(s string, b int) int {
	if b > len(s) {
		b = len(s)
	}
	if b <= 0 {
		return 0
	}
	return Len(s[:b])
}

func units(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
