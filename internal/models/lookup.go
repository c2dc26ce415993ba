// Package models defines the records that flow through the case collector.
package models

import "casecorpus/pkg/utils"

// Lookup dataset column names.
const (
	ColumnHref             = "href"
	ColumnName             = "name"
	ColumnTerm             = "term"
	ColumnFirstParty       = "first_party"
	ColumnSecondParty      = "second_party"
	ColumnFacts            = "facts"
	ColumnFirstPartyWinner = "first_party_winner"
	ColumnDocket           = "docket"
	ColumnFactsLen         = "facts_len"
	ColumnMajorityVote     = "majority_vote"
	ColumnMinorityVote     = "minority_vote"
	ColumnDecisionType     = "decision_type"
	ColumnDisposition      = "disposition"
	ColumnIssueArea        = "issue_area"
)

// LookupColumns lists the columns the collector reads from the lookup dataset.
var LookupColumns = []string{
	ColumnHref,
	ColumnName,
	ColumnTerm,
	ColumnFirstParty,
	ColumnSecondParty,
	ColumnFacts,
	ColumnFirstPartyWinner,
	ColumnDocket,
	ColumnFactsLen,
	ColumnMajorityVote,
	ColumnMinorityVote,
	ColumnDecisionType,
	ColumnDisposition,
	ColumnIssueArea,
}

// LookupRow is one row of the supplemental dataset, column name to raw value.
type LookupRow map[string]string

// Get returns the raw value of a column, or "" when the row has no such column.
func (r LookupRow) Get(column string) string {
	return r[column]
}

// Href returns the trimmed join key of the row.
func (r LookupRow) Href() string {
	return utils.NewStringHelper().TrimWhitespace(r[ColumnHref])
}

// LookupTable maps a trimmed href to its row.
type LookupTable map[string]LookupRow
