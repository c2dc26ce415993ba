package models

// OutputCase is the emitted shape of one case in the final dataset.
type OutputCase struct {
	CaseName    string `json:"case_name"`
	Href        string `json:"href"`
	Year        string `json:"year"`
	FirstParty  string `json:"first_party"`
	SecondParty string `json:"second_party"`
	Decision    bool   `json:"decision"`
	Facts       string `json:"facts"`
	Transcript  string `json:"transcript"`
}

// Stats holds run-level file counts.
type Stats struct {
	TotalBaseCaseFiles   int `json:"total_base_case_files"`
	TotalTranscriptFiles int `json:"total_transcript_files"`
}

// Dataset is the top-level document written to the output file.
type Dataset struct {
	Cases   []OutputCase `json:"cases"`
	Skipped int          `json:"skipped"`
	Stats   Stats        `json:"stats"`
}

// NewOutputCase projects a joined record onto its emitted shape.
func NewOutputCase(c *CaseRecord) OutputCase {
	return OutputCase{
		CaseName:    c.CaseName,
		Href:        c.Href,
		Year:        c.Year,
		FirstParty:  c.FirstParty,
		SecondParty: c.SecondParty,
		Decision:    c.Decision,
		Facts:       c.Facts,
		Transcript:  c.Transcript(),
	}
}
