package inventory

import (
	"fmt"
	"io"
	"strings"
)

// this file contains the export formats for a report set: CSV for
// spreadsheets, and a plain-text block meant to be pasted into a messaging
// app.

// CSVHeader is the fixed column order of the CSV export.
const CSVHeader = "Date,Item,Opening,Purchase,Sales,Closing,Physical,Shortage"

// clubName brands the share message, like the original paper report did.
const clubName = "Star Club"

// ExportCSV writes one comma-joined row per transaction, in the given order,
// after the fixed header. Fields are dates, plain names and numbers, so no
// quoting is applied.
func ExportCSV(w io.Writer, s *Snapshot, txs []Transaction) error {
	if _, err := fmt.Fprintln(w, CSVHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		row := strings.Join([]string{
			tx.Date.String(),
			s.ItemName(tx.ItemID),
			tx.OpeningStock.String(),
			tx.Purchase.String(),
			tx.Sales.String(),
			tx.ClosingStock.String(),
			tx.PhysicalStock.String(),
			tx.Shortage.String(),
		}, ",")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// ShareMessage formats a report set as a plain-text block with per-item lines
// and a totals footer, for copy-paste into a messaging app.
func ShareMessage(s *Snapshot, on Date, txs []Transaction) string {
	totals := ReportTotals(txs)

	var b strings.Builder
	fmt.Fprintf(&b, "*%s Inventory Report - %s*\n\n", clubName, on)
	for _, tx := range txs {
		fmt.Fprintf(&b, "*%s*\n", s.ItemName(tx.ItemID))
		fmt.Fprintf(&b, "- Op: %s, Pur: %s, Sal: %s\n", tx.OpeningStock, tx.Purchase, tx.Sales)
		fmt.Fprintf(&b, "- Phsy: %s, Short: %s\n\n", tx.PhysicalStock, tx.Shortage)
	}
	fmt.Fprintf(&b, "*Totals*\n- Pur: %s\n- Sal: %s\n- Short: %s", totals.Purchase, totals.Sales, totals.Shortage)
	return b.String()
}
