package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SentenceCase upper-cases the first letter of value and lower-cases the rest,
// so "MALE" and "male" both become "Male".
func SentenceCase(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	lowered := cases.Lower(language.Und).String(value)
	r, size := utf8.DecodeRuneInString(lowered)
	return cases.Upper(language.Und).String(string(r)) + lowered[size:]
}

// FoldKey returns a case-folded key suitable for case-insensitive map lookups.
func FoldKey(value string) string {
	return cases.Fold().String(strings.TrimSpace(value))
}
