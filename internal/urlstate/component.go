package urlstate

import (
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// EncodeComponent escapes s the way browsers' encodeURIComponent does: every
// byte except ASCII letters, digits and -_.!~*'() is percent-encoded. Item
// values are encoded with it before being joined by commas, so a comma inside
// a value never reads as a separator.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if componentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

// DecodeComponent reverses EncodeComponent. '+' is not a space here. A
// malformed escape leaves the field as it was typed.
func DecodeComponent(s string) string {
	out, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return out
}

func componentSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
