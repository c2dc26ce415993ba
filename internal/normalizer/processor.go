// Package normalizer joins base case records to the lookup dataset and cleans their text.
package normalizer

import (
	"casecorpus/internal/models"
)

// Processor joins base case hrefs against the lookup table.
type Processor struct {
	transformer *Transformer
	table       models.LookupTable
}

// NewProcessor creates a processor bound to a loaded lookup table.
func NewProcessor(table models.LookupTable) *Processor {
	return &Processor{
		transformer: NewTransformer(),
		table:       table,
	}
}

// Process joins one base case href. An href absent from the table yields a
// no_csv_match marker carrying the href.
func (p *Processor) Process(rawHref string) models.Record {
	href := strs.TrimWhitespace(rawHref)

	row, ok := p.table[href]
	if !ok {
		return models.Skipped(models.SkipNoCSVMatch, href)
	}

	return p.transformer.Transform(href, row)
}
