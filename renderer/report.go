package renderer

import (
	"github.com/starclub/inventory"
)

type reportRow struct {
	Date     string
	Item     string
	Opening  string
	Purchase string
	Sales    string
	Closing  string
	Physical string
	Shortage string
}

type reportData struct {
	Date     string
	Rows     []reportRow
	Purchase string
	Sales    string
	Shortage string
}

// Report renders the filtered report set with its totals footer.
func Report(snap *inventory.Snapshot, on inventory.Date, txs []inventory.Transaction) string {
	totals := inventory.ReportTotals(txs)
	data := reportData{
		Date:     on.String(),
		Purchase: totals.Purchase.String(),
		Sales:    totals.Sales.String(),
		Shortage: totals.Shortage.String(),
	}
	for _, tx := range txs {
		data.Rows = append(data.Rows, reportRow{
			Date:     tx.Date.String(),
			Item:     snap.ItemName(tx.ItemID),
			Opening:  tx.OpeningStock.String(),
			Purchase: tx.Purchase.String(),
			Sales:    tx.Sales.String(),
			Closing:  tx.ClosingStock.String(),
			Physical: tx.PhysicalStock.String(),
			Shortage: tx.Shortage.String(),
		})
	}

	partials := map[string]string{
		"report_rows": "report_rows.md",
	}
	return renderTemplate("report", "report.md", partials, data)
}
