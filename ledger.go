package inventory

import (
	"iter"
	"time"

	"github.com/google/uuid"
)

// Snapshot is the full persisted document: the catalog and the ledger.
//
// The ledger (Transactions) is an append-only, insertion-ordered sequence
// kept most-recent-first: new entries are prepended. Entries are never
// mutated or deleted; every correction is a new audit entry.
type Snapshot struct {
	Items        []Item        `json:"items"`
	Categories   []Category    `json:"categories"`
	Transactions []Transaction `json:"transactions"`
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Items:        make([]Item, 0),
		Categories:   make([]Category, 0),
		Transactions: make([]Transaction, 0),
	}
}

// Latest returns the transaction with the maximum timestamp among entries for
// this item, or false when the item has no entries yet. Timestamp ties
// resolve to the most recently recorded entry (entries are prepended).
func (s *Snapshot) Latest(itemID string) (Transaction, bool) {
	var latest Transaction
	found := false
	for _, tx := range s.Transactions {
		if tx.ItemID != itemID {
			continue
		}
		if !found || tx.Timestamp > latest.Timestamp {
			latest = tx
			found = true
		}
	}
	return latest, found
}

// LatestStockFor returns the item's current stock on hand: the physical count
// of its latest audit entry, or 0 when none exist.
//
// This value seeds the opening stock of the item's next entry. Each day's
// opening stock is the prior day's physically-verified count, not the prior
// day's theoretical closing stock, so drift (rounding, theft, loss) is
// corrected every period instead of compounding.
func (s *Snapshot) LatestStockFor(itemID string) Quantity {
	if tx, ok := s.Latest(itemID); ok {
		return tx.PhysicalStock
	}
	return Q(0)
}

// Record validates a raw entry, derives its closing stock and shortage, and
// prepends the resulting transaction to the ledger.
//
// It never partially applies: on a validation error the snapshot is left
// untouched. Persistence is the caller's single commit point (Store.Save).
func (s *Snapshot) Record(in EntryInput) (Transaction, error) {
	if err := in.Validate(); err != nil {
		return Transaction{}, err
	}

	closing := in.OpeningStock.Add(in.Purchase).Sub(in.Sales)
	tx := Transaction{
		ID:            uuid.NewString(),
		ItemID:        in.ItemID,
		Date:          in.Date,
		OpeningStock:  in.OpeningStock,
		Purchase:      in.Purchase,
		Sales:         in.Sales,
		PhysicalStock: in.PhysicalStock,
		ClosingStock:  closing,
		Shortage:      in.PhysicalStock.Sub(closing),
		Timestamp:     time.Now().UnixMilli(),
	}

	s.Transactions = append([]Transaction{tx}, s.Transactions...)
	return tx, nil
}

// Entries returns an iterator over ledger entries, most recent first,
// accepting entries matching any of the given filters.
func (s *Snapshot) Entries(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range s.Transactions {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// AcceptAll accepts every ledger entry.
func AcceptAll(Transaction) bool { return true }

// ByItem returns a predicate that filters entries by item id.
// The empty string and "all" match every item.
func ByItem(itemID string) func(Transaction) bool {
	return func(tx Transaction) bool {
		return itemID == "" || itemID == "all" || tx.ItemID == itemID
	}
}

// ByDate returns a predicate that filters entries by exact calendar date.
func ByDate(on Date) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Date == on }
}

// Filter returns the report set: entries matching the date exactly and the
// item id (or all items when itemID is empty or "all"), most recent first.
func (s *Snapshot) Filter(on Date, itemID string) []Transaction {
	byItem := ByItem(itemID)
	var out []Transaction
	for _, tx := range s.Transactions {
		if tx.Date == on && byItem(tx) {
			out = append(out, tx)
		}
	}
	return out
}
