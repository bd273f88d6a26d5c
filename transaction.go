package inventory

// Transaction is one daily stock-audit entry in the ledger.
//
// ClosingStock and Shortage are derived once, when the entry is recorded, and
// never recomputed afterwards:
//
//	ClosingStock = OpeningStock + Purchase - Sales
//	Shortage     = PhysicalStock - ClosingStock
//
// A negative Shortage means the physical count came in below the system's
// expectation (missing inventory); positive means excess; zero is balanced.
type Transaction struct {
	ID            string   `json:"id"`
	ItemID        string   `json:"itemId"`
	Date          Date     `json:"date"`
	OpeningStock  Quantity `json:"openingStock"`
	Purchase      Quantity `json:"purchase"`
	Sales         Quantity `json:"sales"`
	PhysicalStock Quantity `json:"physicalStock"`
	ClosingStock  Quantity `json:"closingStock"`
	Shortage      Quantity `json:"shortage"`
	Timestamp     int64    `json:"timestamp"` // creation instant in Unix milliseconds, used for ordering
}

// MarshalJSON implements the json.Marshaler interface. It guarantees the
// legacy key order of the persisted snapshot document, independently of the
// struct layout.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("itemId", t.ItemID)
	w.Append("date", t.Date)
	w.Append("openingStock", t.OpeningStock)
	w.Append("purchase", t.Purchase)
	w.Append("sales", t.Sales)
	w.Append("physicalStock", t.PhysicalStock)
	w.Append("closingStock", t.ClosingStock)
	w.Append("shortage", t.Shortage)
	w.Append("timestamp", t.Timestamp)
	return w.MarshalJSON()
}

// Equal reports whether two transactions carry the same values.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.ItemID == o.ItemID &&
		t.Date == o.Date &&
		t.OpeningStock.Equal(o.OpeningStock) &&
		t.Purchase.Equal(o.Purchase) &&
		t.Sales.Equal(o.Sales) &&
		t.PhysicalStock.Equal(o.PhysicalStock) &&
		t.ClosingStock.Equal(o.ClosingStock) &&
		t.Shortage.Equal(o.Shortage) &&
		t.Timestamp == o.Timestamp
}

// EntryInput is the raw user entry for a daily audit, before derivation.
//
// Negative Purchase or Sales values are accepted: they act as manual
// corrections of a previous day's figure and are deliberately not clamped.
type EntryInput struct {
	ItemID        string
	Date          Date
	OpeningStock  Quantity
	Purchase      Quantity
	Sales         Quantity
	PhysicalStock Quantity
}

// Validate checks the entry for correctness. It sets the date to today if it
// is zero. The item reference itself is not resolved against the catalog:
// dangling references degrade at display time instead of being rejected.
func (in *EntryInput) Validate() error {
	if in.ItemID == "" {
		return &ValidationError{Field: "item", Reason: "no item selected"}
	}
	if in.Date.IsZero() {
		in.Date = Today()
	}
	return nil
}
