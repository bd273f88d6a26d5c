package renderer

import (
	"fmt"
	"strings"

	"github.com/starclub/inventory"
)

// Transaction renders a single audit entry to a one-line summary.
func Transaction(snap *inventory.Snapshot, tx inventory.Transaction) string {
	name := snap.ItemName(tx.ItemID)
	switch {
	case tx.Shortage.IsNegative():
		return fmt.Sprintf("%s %s: counted %s, %s missing", tx.Date, name, tx.PhysicalStock, tx.Shortage.Abs())
	case tx.Shortage.IsPositive():
		return fmt.Sprintf("%s %s: counted %s, %s extra found", tx.Date, name, tx.PhysicalStock, tx.Shortage)
	default:
		return fmt.Sprintf("%s %s: counted %s, balanced", tx.Date, name, tx.PhysicalStock)
	}
}

// Transactions renders the audit log as a markdown table, in the order given
// (the ledger keeps entries most recent first).
func Transactions(snap *inventory.Snapshot, txs []inventory.Transaction) string {
	if len(txs) == 0 {
		return "No transactions recorded yet.\n"
	}

	var b strings.Builder
	b.WriteString("| Date | Item | Opening | Purchase | Sales | Closing | Physical | Shortage |\n")
	b.WriteString("|---|---|---:|---:|---:|---:|---:|---:|\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date, snap.ItemName(tx.ItemID),
			tx.OpeningStock, tx.Purchase, tx.Sales,
			tx.ClosingStock, tx.PhysicalStock, tx.Shortage)
	}
	return b.String()
}
