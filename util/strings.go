package util

import (
	"strings"
	"unicode/utf8"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func LengthBetween(s string, min int, max int) bool {
	n := utf8.RuneCountInString(s)
	return n >= min && n <= max
}
