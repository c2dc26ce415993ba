// Package assembler builds the final case dataset from a collected CaseSet and writes it.
package assembler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"casecorpus/internal/collector"
	"casecorpus/internal/models"
)

// ReasonNoTranscript labels joined cases left out for lack of transcript text.
const ReasonNoTranscript = "no_transcript"

// Summary describes one assembly beyond what the dataset itself records.
type Summary struct {
	Stats           models.Stats
	Included        int
	Skipped         int
	SkipReasons     map[string]int
	FirstPartyWins  int
	SecondPartyWins int
}

// Assemble walks the set in file name order and keeps the joined cases that
// have transcript text. Every other record counts as skipped.
func Assemble(set *collector.CaseSet, stats models.Stats) (*models.Dataset, *Summary) {
	dataset := &models.Dataset{
		Cases: []models.OutputCase{},
		Stats: stats,
	}

	summary := &Summary{
		Stats:       stats,
		SkipReasons: make(map[string]int),
	}

	for _, name := range set.Names() {
		rec, _ := set.Get(name)

		if !rec.Eligible() {
			dataset.Skipped++
			summary.SkipReasons[skipReason(rec)]++

			continue
		}

		out := models.NewOutputCase(rec.Case)
		dataset.Cases = append(dataset.Cases, out)

		if out.Decision {
			summary.FirstPartyWins++
		} else {
			summary.SecondPartyWins++
		}
	}

	summary.Included = len(dataset.Cases)
	summary.Skipped = dataset.Skipped

	return dataset, summary
}

func skipReason(rec models.Record) string {
	if rec.Skip != nil {
		return string(rec.Skip.Reason)
	}

	return ReasonNoTranscript
}

// Encode renders the dataset as JSON. HTML characters and non-ASCII text are
// written as is, and there is no trailing newline. indent <= 0 gives compact output.
func Encode(dataset *models.Dataset, indent int) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(dataset); err != nil {
		return nil, fmt.Errorf("error marshaling dataset: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFile encodes the dataset and writes it to path, creating parent
// directories. It returns the bytes written.
func WriteFile(path string, dataset *models.Dataset, indent int) ([]byte, error) {
	data, err := Encode(dataset, indent)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error writing file: %w", err)
	}

	return data, nil
}
