package query

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize uppercases s, trims surrounding whitespace and removes
// diacritics. Characters that are not letters pass through unchanged.
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToUpper(s))

	out, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}

	// Some lowercase letters (ǰ) have no precomposed uppercase form and
	// only lose their case once the mark is stripped. A stray mark next to
	// surrounding whitespace leaves that whitespace behind.
	return strings.TrimSpace(strings.ToUpper(out))
}
