package inventory

// Stats is the small aggregate consumed by the dashboard and the AI summary.
type Stats struct {
	Items             int      `json:"items"`
	LowStock          int      `json:"lowStock"`
	TotalTransactions int      `json:"totalTransactions"`
	ShortageTotal     Quantity `json:"shortageTotal"`
	EntriesToday      int      `json:"entriesToday"`
}

// StockLevel is one row of the live inventory registry.
type StockLevel struct {
	Item     Item
	Category string
	Current  Quantity
	Audited  bool // false when the item has never been audited
	LastOn   Date // date of the latest audit entry, zero when never audited
	Low      bool // current stock below the item's minimum threshold
	Shortage bool // latest audit detected missing inventory
}

// Totals aggregates a report set.
type Totals struct {
	Purchase Quantity
	Sales    Quantity
	Shortage Quantity // sum of abs(shortage) over entries with negative shortage
}

// TotalShortage sums the absolute shortage over entries where inventory went
// missing (negative shortage). Excess is excluded from this total by design.
func TotalShortage(txs []Transaction) Quantity {
	total := Q(0)
	for _, tx := range txs {
		if tx.Shortage.IsNegative() {
			total = total.Add(tx.Shortage.Abs())
		}
	}
	return total
}

// ReportTotals computes the purchase, sales and shortage totals of a report set.
func ReportTotals(txs []Transaction) Totals {
	t := Totals{Purchase: Q(0), Sales: Q(0), Shortage: Q(0)}
	for _, tx := range txs {
		t.Purchase = t.Purchase.Add(tx.Purchase)
		t.Sales = t.Sales.Add(tx.Sales)
		if tx.Shortage.IsNegative() {
			t.Shortage = t.Shortage.Add(tx.Shortage.Abs())
		}
	}
	return t
}

// LowStock reports whether the item's current stock is below its threshold.
func (s *Snapshot) LowStock(item Item) bool {
	return s.LatestStockFor(item.ID).LessThan(item.MinStock)
}

// StockLevels computes the live inventory registry, one row per catalog item
// in catalog order.
func (s *Snapshot) StockLevels() []StockLevel {
	levels := make([]StockLevel, 0, len(s.Items))
	for _, item := range s.Items {
		level := StockLevel{
			Item:     item,
			Category: s.CategoryName(item.CategoryID),
			Current:  Q(0),
		}
		if tx, ok := s.Latest(item.ID); ok {
			level.Audited = true
			level.LastOn = tx.Date
			level.Current = tx.PhysicalStock
			level.Shortage = tx.Shortage.IsNegative()
		}
		level.Low = level.Current.LessThan(item.MinStock)
		levels = append(levels, level)
	}
	return levels
}

// Stats computes the dashboard aggregate on demand; nothing is stored.
func (s *Snapshot) Stats() Stats {
	stats := Stats{
		Items:             len(s.Items),
		TotalTransactions: len(s.Transactions),
		ShortageTotal:     TotalShortage(s.Transactions),
	}
	for _, item := range s.Items {
		if s.LowStock(item) {
			stats.LowStock++
		}
	}
	today := Today()
	for _, tx := range s.Transactions {
		if tx.Date == today {
			stats.EntriesToday++
		}
	}
	return stats
}
