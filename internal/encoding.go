package internal

import (
	"fmt"
	"io"
	"strconv"
)

// EOF is the rune reported by a character source once it is exhausted
const EOF rune = -1

// IsSpace reports whether the character is a JSON whitespace character
func IsSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// IsDigit reports whether the character is an ASCII digit
func IsDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// IsISOControl reports whether the character is in the C0 or C1 control ranges
func IsISOControl(c rune) bool {
	return (c >= 0 && c <= 0x1f) || (c >= 0x7f && c <= 0x9f)
}

// IsHighSurrogate reports whether the UTF-16 code unit starts a surrogate pair
func IsHighSurrogate(c rune) bool {
	return c >= 0xd800 && c <= 0xdbff
}

// IsLowSurrogate reports whether the UTF-16 code unit ends a surrogate pair
func IsLowSurrogate(c rune) bool {
	return c >= 0xdc00 && c <= 0xdfff
}

// Display renders a character for inclusion in an error message
func Display(c rune) string {
	switch {
	case c == EOF:
		return "end of stream"
	case IsISOControl(c):
		return fmt.Sprintf("0x%x", c)
	default:
		return string(c)
	}
}

// smallIntStrings contains pre-computed string representations for integers 0-99
var smallIntStrings = [100]string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"10", "11", "12", "13", "14", "15", "16", "17", "18", "19",
	"20", "21", "22", "23", "24", "25", "26", "27", "28", "29",
	"30", "31", "32", "33", "34", "35", "36", "37", "38", "39",
	"40", "41", "42", "43", "44", "45", "46", "47", "48", "49",
	"50", "51", "52", "53", "54", "55", "56", "57", "58", "59",
	"60", "61", "62", "63", "64", "65", "66", "67", "68", "69",
	"70", "71", "72", "73", "74", "75", "76", "77", "78", "79",
	"80", "81", "82", "83", "84", "85", "86", "87", "88", "89",
	"90", "91", "92", "93", "94", "95", "96", "97", "98", "99",
}

// FormatInt converts an integer to its decimal string, skipping strconv for 0-99
func FormatInt(n int64) string {
	if n >= 0 && n < 100 {
		return smallIntStrings[n]
	}
	return strconv.FormatInt(n, 10)
}

// hexChars contains hex characters for escape sequences
var hexChars = [16]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f',
}

// escapedChars maps every ASCII byte needing an escape to its JSON form.
// An empty entry means the byte is written as is.
var escapedChars [128]string

func init() {
	for c := 0; c < 0x20; c++ {
		escapedChars[c] = `\u00` + string(hexChars[c>>4]) + string(hexChars[c&0x0f])
	}
	escapedChars[0x7f] = `\u007f`
	escapedChars['"'] = `\"`
	escapedChars['\\'] = `\\`
	escapedChars['\t'] = `\t`
	escapedChars['\b'] = `\b`
	escapedChars['\f'] = `\f`
	escapedChars['\n'] = `\n`
	escapedChars['\r'] = `\r`
}

// WriteEscaped writes s to w with JSON string escaping applied, without the
// surrounding quotes. Unescaped runs are written with a single call each.
// U+2028 and U+2029 are escaped so the output stays safe for JavaScript eval.
func WriteEscaped(w io.StringWriter, s string) error {
	last := 0
	for i := 0; i < len(s); {
		c := s[i]
		var escaped string
		width := 1
		switch {
		case c < 0x80:
			escaped = escapedChars[c]
		case c == 0xe2 && i+2 < len(s) && s[i+1] == 0x80 && (s[i+2] == 0xa8 || s[i+2] == 0xa9):
			width = 3
			if s[i+2] == 0xa8 {
				escaped = `\u2028`
			} else {
				escaped = `\u2029`
			}
		}
		if escaped == "" {
			i++
			continue
		}
		if last < i {
			if _, err := w.WriteString(s[last:i]); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(escaped); err != nil {
			return err
		}
		i += width
		last = i
	}
	if last < len(s) {
		if _, err := w.WriteString(s[last:]); err != nil {
			return err
		}
	}
	return nil
}
