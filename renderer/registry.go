package renderer

import (
	"fmt"
	"strings"

	"github.com/starclub/inventory"
)

// Registry renders the live inventory registry: one row per catalog item with
// its current physically-verified stock and status flags.
func Registry(snap *inventory.Snapshot) string {
	levels := snap.StockLevels()
	if len(levels) == 0 {
		return "No items found. Add products with `add-item`.\n"
	}

	var b strings.Builder
	b.WriteString("# Live Inventory Registry\n\n")
	b.WriteString("| Item | Category | Min | Current | Status | Last Audit |\n")
	b.WriteString("|---|---|---:|---:|---|---|\n")
	for _, level := range levels {
		lastAudit := "Never"
		if level.Audited {
			lastAudit = level.LastOn.String()
		}
		fmt.Fprintf(&b, "| %s (%s) | %s | %s | %s | %s | %s |\n",
			level.Item.Name, level.Item.Unit, level.Category,
			level.Item.MinStock, level.Current, levelStatus(level), lastAudit)
	}
	return b.String()
}
