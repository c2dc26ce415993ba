// Package collector reads base case and transcript files from the case directory
// and joins them into a CaseSet.
package collector

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"casecorpus/internal/logger"
	"casecorpus/internal/models"
	"casecorpus/internal/normalizer"
)

// ErrInvalidUTF8 is returned for a case or transcript file that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// baseCaseFile is the part of a base case document the collector reads.
type baseCaseFile struct {
	Href string `json:"href"`
}

// Collector runs the base case and transcript passes over one directory.
type Collector struct {
	dir       string
	processor *normalizer.Processor
	log       *logger.Logger
}

// NewCollector creates a collector for dir joining against table.
func NewCollector(dir string, table models.LookupTable, log *logger.Logger) *Collector {
	return &Collector{
		dir:       dir,
		processor: normalizer.NewProcessor(table),
		log:       log,
	}
}

// CollectBaseCases joins every base case file in the directory and stores the
// result in set. It returns the number of base case files read.
func (c *Collector) CollectBaseCases(set *CaseSet) (int, error) {
	names, err := c.jsonFiles()
	if err != nil {
		return 0, err
	}

	count := 0

	for _, name := range names {
		if IsTranscript(name) {
			continue
		}

		var doc baseCaseFile
		if err := c.readJSON(name, &doc); err != nil {
			return count, err
		}

		rec := c.processor.Process(doc.Href)
		if rec.IsSkipped() {
			c.log.Debug("Skipping base case", "file", name, "reason", rec.Skip.Reason, "href", rec.Skip.Href)
		}

		set.Put(name, rec)
		count++
	}

	return count, nil
}

// AttachTranscripts appends the text of every transcript file to its base case.
// Transcripts whose base case is unknown or skipped are ignored. It returns the
// number of transcript files present in the directory.
func (c *Collector) AttachTranscripts(set *CaseSet) (int, error) {
	names, err := c.jsonFiles()
	if err != nil {
		return 0, err
	}

	count := 0

	for _, name := range names {
		if !IsTranscript(name) {
			continue
		}

		count++

		base := BaseName(name)

		rec, ok := set.Get(base)
		if !ok || rec.IsSkipped() {
			c.log.Debug("Ignoring orphan transcript", "file", name, "base", base)
			continue
		}

		var doc transcriptFile
		if err := c.readJSON(name, &doc); err != nil {
			return count, err
		}

		body, err := doc.Body()
		if err != nil {
			return count, fmt.Errorf("failed to parse %s: %w", name, err)
		}

		text := body.Flatten()
		if text == "" {
			continue
		}

		rec.Case.AttachTranscript(text)
	}

	return count, nil
}

// jsonFiles lists the .json entries of the directory, directories excluded.
func (c *Collector) jsonFiles() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list case directory: %w", err)
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() || !IsJSON(entry.Name()) {
			continue
		}

		names = append(names, entry.Name())
	}

	return names, nil
}

func (c *Collector) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if !utf8.Valid(data) {
		return fmt.Errorf("%s: %w", name, ErrInvalidUTF8)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return nil
}
