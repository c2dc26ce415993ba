package models

import "strings"

// SkipReason explains why a base case never reaches the output dataset.
type SkipReason string

// Skip reasons recorded by the joiner.
const (
	SkipNoCSVMatch       SkipReason = "no_csv_match"
	SkipWinnerMissingCSV SkipReason = "winner_missing_csv"
)

// CaseRecord is the working record built for one joined base case file.
type CaseRecord struct {
	Href         string
	CaseName     string
	Year         string
	FirstParty   string
	SecondParty  string
	Facts        string
	Docket       string
	FactsLen     string
	MajorityVote string
	MinorityVote string
	DecisionType string
	Disposition  string
	IssueArea    string

	// Decision is true when the first party prevailed.
	Decision bool

	TranscriptParts []string
	HasTranscript   bool
}

// AttachTranscript appends the flattened text of one transcript file.
// Empty text leaves the record untouched.
func (c *CaseRecord) AttachTranscript(text string) {
	if text == "" {
		return
	}

	c.HasTranscript = true
	c.TranscriptParts = append(c.TranscriptParts, text)
}

// Transcript joins the accumulated transcript parts with single spaces.
func (c *CaseRecord) Transcript() string {
	return strings.Join(c.TranscriptParts, " ")
}

// SkippedRecord marks a base case that failed to join.
type SkippedRecord struct {
	Reason SkipReason
	Href   string
}

// Record holds exactly one of a joined case or a skip marker.
type Record struct {
	Case *CaseRecord
	Skip *SkippedRecord
}

// Joined wraps a successfully joined case.
func Joined(c *CaseRecord) Record {
	return Record{Case: c}
}

// Skipped builds a skip marker. href may be empty.
func Skipped(reason SkipReason, href string) Record {
	return Record{Skip: &SkippedRecord{Reason: reason, Href: href}}
}

// IsSkipped reports whether the record is a skip marker.
func (r Record) IsSkipped() bool {
	return r.Skip != nil || r.Case == nil
}

// Eligible reports whether the record belongs in the output dataset.
func (r Record) Eligible() bool {
	return !r.IsSkipped() && r.Case.HasTranscript
}
