package collector

import (
	"regexp"
	"strings"
)

const jsonExt = ".json"

var (
	// transcriptPattern matches names like case123-t1.json or case123_T10.json.
	transcriptPattern = regexp.MustCompile(`^.*[-_][tT]\d+\.json$`)
	transcriptSuffix  = regexp.MustCompile(`[-_][tT]\d+\.json$`)
)

// IsJSON reports whether name has the .json extension.
func IsJSON(name string) bool {
	return strings.HasSuffix(name, jsonExt)
}

// IsTranscript reports whether name follows the transcript file convention.
func IsTranscript(name string) bool {
	return transcriptPattern.MatchString(name)
}

// BaseName maps a transcript file name to the base case file it belongs to.
func BaseName(transcriptName string) string {
	return transcriptSuffix.ReplaceAllString(transcriptName, jsonExt)
}
