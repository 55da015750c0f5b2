package util

import (
	"unicode"
	"unicode/utf8"
)

// StartsWithSpace reports whether the first rune of s is whitespace.
func StartsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

// EndsWithSpace reports whether the last rune of s is whitespace.
func EndsWithSpace(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsSpace(r)
}
