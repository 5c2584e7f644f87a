package utils

import (
	"strings"
	"unicode"
)

// IsSeparator checks if a rune is punctuation people type inside phone numbers
func IsSeparator(r rune) bool {
	return r == ' ' || r == '-' || r == '.' || r == '(' || r == ')' || r == '/' || unicode.IsSpace(r)
}

// StripSeparators removes phone number punctuation, leaving anything else in place
// so that invalid characters still fail validation later.
func StripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if IsSeparator(r) {
			return -1
		}
		return r
	}, s)
}

// IsOnlyNumbers checks if a string consists entirely of ASCII digits
func IsOnlyNumbers(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
