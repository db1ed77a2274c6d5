package charm

import "unicode/utf8"

// UTFMax is the largest number of bytes a single unit can span.
const UTFMax = utf8.UTFMax

// LeadWidth returns the total length of the unit that b starts, or 0 if b
// can never be the first byte of a unit (continuation bytes, 0xC0, 0xC1 and
// 0xF5 through 0xFF).
func LeadWidth(b byte) int {
	switch {
	case b < utf8.RuneSelf:
		return 1
	case b < 0xC2:
		return 0
	case b < 0xE0:
		return 2
	case b < 0xF0:
		return 3
	case b < 0xF5:
		return 4
	default:
		return 0
	}
}

// decodeUnit reports the scalar value encoded by p, which must hold exactly
// one complete unit. Overlong forms, surrogates, values above U+10FFFF and
// bad continuation bytes are all rejected.
func decodeUnit(p []byte) (rune, bool) {
	r, size := utf8.DecodeRune(p)
	if size != len(p) {
		return utf8.RuneError, false
	}
	// A literal U+FFFD decodes to RuneError with size 3; only size 1 means failure.
	if r == utf8.RuneError && size == 1 {
		return utf8.RuneError, false
	}
	return r, true
}
