package normalizer

import (
	"errors"
	"fmt"

	"casecorpus/internal/models"
)

// Validation errors.
var (
	ErrEmptyHeader       = errors.New("lookup dataset has no header row")
	ErrMissingHrefColumn = errors.New("lookup dataset header has no href column")
)

// Validator checks the lookup dataset header for the columns the joiner reads.
type Validator struct {
	required []string
	optional []string
}

// NewValidator creates a validator requiring href and expecting the remaining lookup columns.
func NewValidator() *Validator {
	return &Validator{
		required: []string{models.ColumnHref},
		optional: models.LookupColumns[1:],
	}
}

// ValidateHeader fails when a required column is absent and returns the
// expected columns that are missing. Missing optional columns read as "".
func (v *Validator) ValidateHeader(header []string) ([]string, error) {
	if len(header) == 0 {
		return nil, ErrEmptyHeader
	}

	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	for _, col := range v.required {
		if !present[col] {
			if col == models.ColumnHref {
				return nil, ErrMissingHrefColumn
			}

			return nil, fmt.Errorf("lookup dataset header has no %s column", col)
		}
	}

	var missing []string

	for _, col := range v.optional {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	return missing, nil
}
