// Package report renders the run summary of a collection for the console and as
// a signed markdown document.
package report

import (
	"sort"
	"strconv"

	"casecorpus/internal/assembler"
)

// Report is the printable summary of one collection run.
type Report struct {
	Output  string
	Summary *assembler.Summary
}

// New creates a report for a dataset written to output.
func New(output string, summary *assembler.Summary) *Report {
	return &Report{Output: output, Summary: summary}
}

// Totals returns the headline counts as label/value rows.
func (r *Report) Totals() [][]string {
	s := r.Summary

	return [][]string{
		{"Base case files", strconv.Itoa(s.Stats.TotalBaseCaseFiles)},
		{"Transcript files", strconv.Itoa(s.Stats.TotalTranscriptFiles)},
		{"Cases included", strconv.Itoa(s.Included)},
		{"Cases skipped", strconv.Itoa(s.Skipped)},
		{"First party wins", strconv.Itoa(s.FirstPartyWins)},
		{"Second party wins", strconv.Itoa(s.SecondPartyWins)},
	}
}

// SkipRows returns the skip counts per reason, sorted by reason.
func (r *Report) SkipRows() [][]string {
	reasons := make([]string, 0, len(r.Summary.SkipReasons))
	for reason := range r.Summary.SkipReasons {
		reasons = append(reasons, reason)
	}

	sort.Strings(reasons)

	rows := make([][]string, 0, len(reasons))
	for _, reason := range reasons {
		rows = append(rows, []string{reason, strconv.Itoa(r.Summary.SkipReasons[reason])})
	}

	return rows
}
