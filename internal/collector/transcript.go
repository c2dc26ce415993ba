package collector

import (
	"encoding/json"
	"strings"

	"casecorpus/pkg/utils"
)

// transcriptFile is the part of a transcript document the collector reads.
type transcriptFile struct {
	Transcript json.RawMessage `json:"transcript"`
}

// Body decodes the transcript object. It returns nil when the value is absent
// or empty: null, false, 0, "", [] or {}. Any other non-object value is an error.
func (f *transcriptFile) Body() (*transcriptBody, error) {
	if len(f.Transcript) == 0 {
		return nil, nil
	}

	var value any
	if err := json.Unmarshal(f.Transcript, &value); err != nil {
		return nil, err
	}

	if isEmptyValue(value) {
		return nil, nil
	}

	var body transcriptBody
	if err := json.Unmarshal(f.Transcript, &body); err != nil {
		return nil, err
	}

	return &body, nil
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case float64:
		return val == 0
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	default:
		return false
	}
}

type transcriptBody struct {
	Sections []struct {
		Turns []struct {
			TextBlocks []struct {
				Text string `json:"text"`
			} `json:"text_blocks"`
		} `json:"turns"`
	} `json:"sections"`
}

var strs = utils.NewStringHelper()

// Flatten joins every non-empty text block in section, turn, block order.
func (b *transcriptBody) Flatten() string {
	if b == nil {
		return ""
	}

	var collected []string

	for _, section := range b.Sections {
		for _, turn := range section.Turns {
			for _, block := range turn.TextBlocks {
				if txt := strs.FlattenLine(block.Text); txt != "" {
					collected = append(collected, txt)
				}
			}
		}
	}

	return strs.TrimWhitespace(strings.Join(collected, " "))
}
