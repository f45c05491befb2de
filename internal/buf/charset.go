package buf

import (
	"unicode/utf16"
	"unicode/utf8"
)

// Charset selects how a length-prefixed text field is measured on the wire.
// The length prefix always counts characters, never bytes.
type Charset uint8

const (
	// ASCII stores one byte per character. Bytes are copied verbatim, so any
	// byte value round-trips even though the field is nominally ASCII.
	ASCII Charset = iota

	// UTF8 stores UTF-8 bytes, but the length prefix counts UTF-16 code units
	// of the decoded text. For multi-byte text the prefix is smaller than the
	// byte count; this is how the game writes these fields.
	UTF8
)

func (c Charset) String() string {
	switch c {
	case ASCII:
		return "ascii"
	case UTF8:
		return "utf-8"
	default:
		return "unknown"
	}
}

// Units returns the character count written in front of s.
func (c Charset) Units(s string) int {
	if c == ASCII {
		return len(s)
	}
	n := 0
	for _, r := range s {
		// invalid bytes arrive as RuneError with width 1 and count once
		n += utf16.RuneLen(r)
	}
	return n
}

// span returns how many bytes of b encode the first units characters.
// ok is false when b runs out first.
func (c Charset) span(b []byte, units int) (int, bool) {
	if c == ASCII {
		return units, units <= len(b)
	}
	i := 0
	for units > 0 {
		if i >= len(b) {
			return i, false
		}
		r, size := utf8.DecodeRune(b[i:])
		i += size
		units -= utf16.RuneLen(r)
	}
	return i, true
}
