package normalizer

import (
	"strings"

	"casecorpus/internal/models"
)

// Transformer turns a matched lookup row into a case record.
type Transformer struct {
	truthy map[string]bool
	falsy  map[string]bool
}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{
		truthy: map[string]bool{"true": true, "1": true, "yes": true},
		falsy:  map[string]bool{"false": true, "0": true, "no": true},
	}
}

// ParseWinner reads a first_party_winner flag. ok is false when the value is
// neither a recognized true nor false spelling.
func (t *Transformer) ParseWinner(raw string) (winner, ok bool) {
	v := strings.ToLower(strs.TrimWhitespace(raw))

	switch {
	case t.truthy[v]:
		return true, true
	case t.falsy[v]:
		return false, true
	default:
		return false, false
	}
}

// Transform builds the record for href from its lookup row. An unreadable
// winner flag yields a winner_missing_csv marker, which does not keep the href.
func (t *Transformer) Transform(href string, row models.LookupRow) models.Record {
	winner, ok := t.ParseWinner(row.Get(models.ColumnFirstPartyWinner))
	if !ok {
		return models.Skipped(models.SkipWinnerMissingCSV, "")
	}

	return models.Joined(&models.CaseRecord{
		Href:            href,
		CaseName:        row.Get(models.ColumnName),
		Year:            row.Get(models.ColumnTerm),
		FirstParty:      Clean(row.Get(models.ColumnFirstParty)),
		SecondParty:     Clean(row.Get(models.ColumnSecondParty)),
		Facts:           Clean(row.Get(models.ColumnFacts)),
		Decision:        winner,
		Docket:          row.Get(models.ColumnDocket),
		FactsLen:        row.Get(models.ColumnFactsLen),
		MajorityVote:    row.Get(models.ColumnMajorityVote),
		MinorityVote:    row.Get(models.ColumnMinorityVote),
		DecisionType:    row.Get(models.ColumnDecisionType),
		Disposition:     row.Get(models.ColumnDisposition),
		IssueArea:       row.Get(models.ColumnIssueArea),
		TranscriptParts: []string{},
	})
}
