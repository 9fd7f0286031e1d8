package joto

import "unicode/utf8"

// Glyphs the formatter emits in Unicode mode.
const (
	minusSign     = '−' // MINUS SIGN
	fractionSlash = '⁄' // FRACTION SLASH
	thinSep       = ' ' // PUNCTUATION SPACE
)

// isSpace reports whether r may separate parts of a quantity. U+2008 is
// deliberately in both this set and isGroupSep: inside a digit run it
// groups digits, between an inch fraction and the preceding whole count
// it acts as a separator.
func isSpace(r rune) bool {
	switch r {
	case 0x0020, 0x00A0, 0xFEFF, 0x202F:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// isGroupSep reports whether r may appear between digits of a whole count.
func isGroupSep(r rune) bool {
	return r == ',' || r == thinSep
}

// isDigit reports whether r is an ASCII decimal digit. No other digit
// repertoire is recognized.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSign reports whether r is a leading sign rune.
func isSign(r rune) bool {
	return r == '+' || r == '-' || r == minusSign
}

// isFractionSlash reports whether r separates a fraction numerator from
// its denominator.
func isFractionSlash(r rune) bool {
	return r == '/' || r == fractionSlash
}

// lastRune decodes the rune ending at byte offset end.
func lastRune(s string, end int) (rune, int) {
	return utf8.DecodeLastRuneInString(s[:end])
}

// trimSpace moves end left past any trailing whitespace runes.
func trimSpace(s string, end int) int {
	for end > 0 {
		r, size := lastRune(s, end)
		if !isSpace(r) {
			break
		}
		end -= size
	}
	return end
}
