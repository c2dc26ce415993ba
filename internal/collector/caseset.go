package collector

import (
	"sort"

	"casecorpus/internal/models"
)

// CaseSet holds the records of one run keyed by base case file name.
type CaseSet struct {
	records map[string]models.Record
}

// NewCaseSet creates an empty case set.
func NewCaseSet() *CaseSet {
	return &CaseSet{records: make(map[string]models.Record)}
}

// Put stores the record for a base file name.
func (s *CaseSet) Put(name string, rec models.Record) {
	s.records[name] = rec
}

// Get returns the record stored for name.
func (s *CaseSet) Get(name string) (models.Record, bool) {
	rec, ok := s.records[name]
	return rec, ok
}

// Len returns the number of base case files recorded, skipped ones included.
func (s *CaseSet) Len() int {
	return len(s.records)
}

// Names returns the stored file names in sorted order.
func (s *CaseSet) Names() []string {
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
