// Package utils provides small text helpers shared by the collector packages.
package utils

import (
	"strings"
	"unicode"
)

// controlWhitespace maps line breaks and tabs to a single space each.
var controlWhitespace = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ")

// IsSpace reports whether r is whitespace. Besides unicode.IsSpace it accepts
// the file, group, record and unit separators U+001C to U+001F.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// StringHelper provides string utility functions.
type StringHelper struct{}

// NewStringHelper creates a new string helper.
func NewStringHelper() *StringHelper {
	return &StringHelper{}
}

// TrimWhitespace removes leading and trailing whitespace as defined by IsSpace.
func (s *StringHelper) TrimWhitespace(str string) string {
	return strings.TrimFunc(str, IsSpace)
}

// NormalizeWhitespace replaces each run of whitespace with one space and trims the ends.
func (s *StringHelper) NormalizeWhitespace(str string) string {
	return strings.Join(strings.FieldsFunc(str, IsSpace), " ")
}

// FlattenControlWhitespace replaces every newline, carriage return and tab with a space.
func (s *StringHelper) FlattenControlWhitespace(str string) string {
	return controlWhitespace.Replace(str)
}

// FlattenLine replaces newlines with spaces and trims the result.
// Carriage returns and tabs inside the text are kept.
func (s *StringHelper) FlattenLine(str string) string {
	return s.TrimWhitespace(strings.ReplaceAll(str, "\n", " "))
}
