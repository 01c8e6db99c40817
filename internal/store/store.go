// Package store persists raw NOTAM records as one YAML file per UTC day.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gpswatch/notamview/internal/domain"
)

// Store reads and writes day-keyed NOTAM files under a single directory.
// File layout: <dir>/<YYYY-MM-DD>_notams.yaml, each file a YAML list of raw
// records. Records are stored exactly as received; validation happens on the
// way out, not on the way in, so a bad record keeps its diagnostic instead
// of vanishing.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// Load returns the raw records for a day, oldest first. A day with no file
// yet is an empty list, not an error.
func (s *Store) Load(day string) ([]domain.RawRecord, error) {
	data, err := os.ReadFile(s.path(day))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read day file: %w", err)
	}

	var records []domain.RawRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse day file %s: %w", day, err)
	}
	return records, nil
}

// Save replaces the day's record list.
func (s *Store) Save(day string, records []domain.RawRecord) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode day file %s: %w", day, err)
	}
	if err := os.WriteFile(s.path(day), data, 0o644); err != nil {
		return fmt.Errorf("write day file: %w", err)
	}
	return nil
}

// Add appends records to the day's list.
func (s *Store) Add(day string, records ...domain.RawRecord) error {
	existing, err := s.Load(day)
	if err != nil {
		return err
	}
	return s.Save(day, append(existing, records...))
}

// AddMissing appends only the records not already in the day's list,
// matching on the four NOTAM fields, and returns how many were appended.
// Repeated sweeps re-extract the same advisories; this keeps them from
// piling up in the day files.
func (s *Store) AddMissing(day string, records ...domain.RawRecord) (int, error) {
	existing, err := s.Load(day)
	if err != nil {
		return 0, err
	}

	appended := 0
	for _, rec := range records {
		if containsRecord(existing, rec) {
			continue
		}
		existing = append(existing, rec)
		appended++
	}
	if appended == 0 {
		return 0, nil
	}
	return appended, s.Save(day, existing)
}

// Delete removes the first record matching all four fields of rec. Returns
// false when no record matches.
func (s *Store) Delete(day string, rec domain.RawRecord) (bool, error) {
	records, err := s.Load(day)
	if err != nil {
		return false, err
	}
	for i, r := range records {
		if sameRecord(r, rec) {
			records = append(records[:i], records[i+1:]...)
			return true, s.Save(day, records)
		}
	}
	return false, nil
}

// Update replaces the first record matching orig with next. Returns false
// when no record matches.
func (s *Store) Update(day string, orig, next domain.RawRecord) (bool, error) {
	records, err := s.Load(day)
	if err != nil {
		return false, err
	}
	for i, r := range records {
		if sameRecord(r, orig) {
			records[i] = next
			return true, s.Save(day, records)
		}
	}
	return false, nil
}

func (s *Store) path(day string) string {
	return filepath.Join(s.dir, day+"_notams.yaml")
}

func containsRecord(records []domain.RawRecord, rec domain.RawRecord) bool {
	for _, r := range records {
		if sameRecord(r, rec) {
			return true
		}
	}
	return false
}

// sameRecord compares the four NOTAM fields; extra keys are ignored.
func sameRecord(a, b domain.RawRecord) bool {
	for _, key := range domain.RequiredKeys {
		if a[key] != b[key] {
			return false
		}
	}
	return true
}
