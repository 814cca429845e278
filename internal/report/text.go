package report

import (
	"strings"
	"unicode/utf8"
)

// cut truncates s to at most n runes.
func cut(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	r := []rune(s)

	return string(r[:n])
}

// left truncates s to n runes and pads it on the right.
func left(s string, n int) string {
	s = cut(s, n)

	return s + strings.Repeat(" ", n-utf8.RuneCountInString(s))
}

// right pads s on the left to n runes without truncating.
func right(s string, n int) string {
	pad := n - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}

	return strings.Repeat(" ", pad) + s
}

// center pads s on both sides to n runes; an odd remainder goes right.
func center(s string, n int) string {
	pad := n - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}

	l := pad / 2

	return strings.Repeat(" ", l) + s + strings.Repeat(" ", pad-l)
}

func rule(ch string, n int) string {
	return strings.Repeat(ch, n) + "\n"
}
