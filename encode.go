package inventory

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeSnapshot writes the whole snapshot as a single JSON document with the
// canonical top-level key order: items, categories, transactions. The
// serialization is a lossless round-trip: numbers stay numeric, strings stay
// strings, array order is preserved.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	var jw jsonObjectWriter
	jw.Append("items", s.Items)
	jw.Append("categories", s.Categories)
	jw.Append("transactions", s.Transactions)
	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot document previously written by
// EncodeSnapshot. Missing arrays decode to empty slices, never nil, so a
// decoded snapshot is always ready for appends.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	s := NewSnapshot()
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("could not decode snapshot document: %w", err)
	}
	if s.Items == nil {
		s.Items = make([]Item, 0)
	}
	if s.Categories == nil {
		s.Categories = make([]Category, 0)
	}
	if s.Transactions == nil {
		s.Transactions = make([]Transaction, 0)
	}
	return s, nil
}
