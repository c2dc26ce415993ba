// Package lookup loads the supplemental case outcome dataset.
package lookup

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"casecorpus/internal/models"
	"casecorpus/internal/normalizer"
)

// ErrInvalidUTF8 is returned when the dataset is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("lookup dataset is not valid UTF-8")

// Loader reads the lookup dataset into a table keyed by href.
type Loader struct {
	validator *normalizer.Validator

	// MissingColumns lists expected columns absent from the last header read.
	MissingColumns []string
}

// NewLoader creates a new loader instance.
func NewLoader() *Loader {
	return &Loader{validator: normalizer.NewValidator()}
}

// LoadFile opens path and reads it with Load. The file is closed before returning.
func (l *Loader) LoadFile(path string) (models.LookupTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lookup dataset: %w", err)
	}
	defer f.Close()

	table, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}

// Load reads CSV with a header row. Rows sharing an href overwrite earlier
// ones. A leading UTF-8 byte order mark is dropped; any invalid UTF-8 fails.
func (l *Loader) Load(r io.Reader) (models.LookupTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read lookup dataset: %w", err)
	}

	if !utf8.Valid(raw) {
		return nil, ErrInvalidUTF8
	}

	decoded := transform.NewReader(bytes.NewReader(raw), unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, normalizer.ErrEmptyHeader
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	missing, err := l.validator.ValidateHeader(header)
	if err != nil {
		return nil, err
	}

	l.MissingColumns = missing

	table := make(models.LookupTable)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(models.LookupRow, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}

		table[row.Href()] = row
	}

	return table, nil
}
