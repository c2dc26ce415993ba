package normalizer

import (
	"regexp"

	"casecorpus/pkg/utils"
)

// tagPattern matches an HTML-like tag. Nested or unterminated tags are not handled.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

var strs = utils.NewStringHelper()

// Clean strips markup tags and collapses whitespace in a free-text field.
// HTML entities are left as they are.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = tagPattern.ReplaceAllString(text, "")
	text = strs.FlattenControlWhitespace(text)

	return strs.NormalizeWhitespace(text)
}
