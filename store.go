package tasa

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/etnz/tasa/date"
	"go.uber.org/zap"
)

// Store persists the list of rate records in a single json file.
//
// Records are kept newest first: the first record holds the active rate.
// Each operation reads the whole file and, when it changes something, rewrites
// it entirely. Nothing is cached between operations, and there is no locking:
// two processes writing the same file may lose updates.
type Store struct {
	path   string
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report unreadable files.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithClock sets the function used to stamp new records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore returns a Store backed by the file at path. The file is not read
// nor created until an operation needs it.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.path }

// Load reads all records.
//
// A missing, unreadable or malformed file is an empty store: Load never fails.
func (s *Store) Load() []Record {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("rate file does not exist", zap.String("path", s.path))
		return nil
	}
	if err != nil {
		s.logger.Warn("cannot read rate file, using an empty store", zap.String("path", s.path), zap.Error(err))
		return nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("malformed rate file, using an empty store", zap.String("path", s.path), zap.Error(err))
		return nil
	}
	return records
}

// Save overwrites the file with records.
//
// The content is written to a temporary file in the same folder, then renamed
// over the target, so that a crash never leaves a truncated file behind.
func (s *Store) Save(records []Record) error {
	if records == nil {
		records = []Record{} // persist "[]", not "null".
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("cannot encode rates: %w", err)
	}

	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base+".*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temporary file for %q: %w", s.path, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot chmod %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("cannot replace %q: %w", s.path, err)
	}
	s.logger.Debug("rates saved", zap.String("path", s.path), zap.Int("count", len(records)))
	return nil
}

// EnsureInitialized seeds an empty store with a rate of 1.
func (s *Store) EnsureInitialized() error {
	if len(s.Load()) > 0 {
		return nil
	}
	s.logger.Info("empty rate file, creating a default rate", zap.String("path", s.path))
	_, err := s.Create(R(1))
	return err
}

// ActiveRate returns the rate of the first record, which is the last one added.
//
// Modifying an older record never makes it active, even with a more recent
// timestamp. ok is false if the store is empty.
func (s *Store) ActiveRate() (rate Rate, ok bool) {
	r, ok := s.Active()
	return r.Rate, ok
}

// Active returns the first record, the one holding the active rate.
func (s *Store) Active() (Record, bool) {
	records := s.Load()
	if len(records) == 0 {
		return Record{}, false
	}
	return records[0], true
}

// ListAll returns all records, newest first.
func (s *Store) ListAll() []Record { return s.Load() }

// Find returns the record with the given id.
func (s *Store) Find(id int) (Record, bool) {
	records := s.Load()
	i := slices.IndexFunc(records, func(r Record) bool { return r.ID == id })
	if i < 0 {
		return Record{}, false
	}
	return records[i], true
}

// On returns the record that was active at the end of the day: the first one,
// in store order, created on that day.
func (s *Store) On(day date.Date) (Record, bool) {
	records := s.Load()
	i := slices.IndexFunc(records, func(r Record) bool { return r.Date() == day })
	if i < 0 {
		return Record{}, false
	}
	return records[i], true
}

// Create adds a new record with rate, stamped now, in front of all the others.
//
// The rate is not validated: callers reject non positive rates.
func (s *Store) Create(rate Rate) (Record, error) {
	records := s.Load()
	r := Record{
		ID:        nextID(records),
		Timestamp: date.NewTimestamp(s.now()),
		Rate:      rate,
	}
	records = slices.Insert(records, 0, r)
	if err := s.Save(records); err != nil {
		return Record{}, err
	}
	s.logger.Debug("rate created", zap.Int("id", r.ID), zap.Stringer("rate", r.Rate))
	return r, nil
}

// Modify replaces the rate of the record id, in place.
//
// The record keeps its position and timestamp. It returns false, and does not
// touch the file, if there is no such record.
func (s *Store) Modify(id int, rate Rate) (bool, error) {
	records := s.Load()
	i := slices.IndexFunc(records, func(r Record) bool { return r.ID == id })
	if i < 0 {
		return false, nil
	}
	records[i].Rate = rate
	if err := s.Save(records); err != nil {
		return false, err
	}
	s.logger.Debug("rate modified", zap.Int("id", id), zap.Stringer("rate", rate))
	return true, nil
}

// Delete removes the record id. It returns false, and does not touch the
// file, if there is no such record.
func (s *Store) Delete(id int) (bool, error) {
	records := s.Load()
	n := len(records)
	records = slices.DeleteFunc(records, func(r Record) bool { return r.ID == id })
	if len(records) == n {
		return false, nil
	}
	if err := s.Save(records); err != nil {
		return false, err
	}
	s.logger.Debug("rate deleted", zap.Int("id", id))
	return true, nil
}
