package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store owns the persisted snapshot document: one JSON file, whole-document
// read and replace. Last write wins; a single logical client is assumed, so
// there is no locking and no merge.
//
// The store is constructed once at process start and passed explicitly to
// every operation that needs it. There is no ambient singleton.
type Store struct {
	path string
}

// NewStore creates a store for the given snapshot file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// SeedSnapshot returns the documented default snapshot used when no data has
// been saved yet: a small starter catalog and an empty ledger.
func SeedSnapshot() *Snapshot {
	return &Snapshot{
		Items: []Item{
			{ID: "1", Name: "Milk 1L", CategoryID: "1", MinStock: Q(20), Unit: "pkts"},
			{ID: "2", Name: "Wheat Flour 5kg", CategoryID: "1", MinStock: Q(10), Unit: "bags"},
			{ID: "3", Name: "Lays Chips", CategoryID: "2", MinStock: Q(50), Unit: "pkts"},
		},
		Categories: []Category{
			{ID: "1", Name: "Grocery"},
			{ID: "2", Name: "Snacks"},
		},
		Transactions: make([]Transaction, 0),
	}
}

// Load returns the last saved snapshot. Absence of data is not an error: if
// the file does not exist yet, Load returns the seed snapshot.
func (s *Store) Load() (*Snapshot, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("snapshot file %q does not exist, starting from the seed catalog", s.path)
		return SeedSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file %q: %w", s.path, err)
	}
	defer f.Close()

	snap, err := DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode snapshot file %q: %w", s.path, err)
	}
	return snap, nil
}

// Save serializes and durably writes the entire snapshot, replacing any prior
// value. The document is written to a temporary file and renamed into place,
// so a reader observes either the old snapshot or the new one, never a hybrid.
func (s *Store) Save(snap *Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &StorageError{Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &StorageError{Path: s.path, Err: err}
	}

	if err := EncodeSnapshot(tmp, snap); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &StorageError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Path: s.path, Err: err}
	}
	return nil
}
