package renderer

import (
	"strings"
	"testing"

	"github.com/starclub/inventory"
)

func auditedSnapshot(t *testing.T) *inventory.Snapshot {
	t.Helper()
	snap := inventory.SeedSnapshot()
	if _, err := snap.Record(inventory.EntryInput{
		ItemID:        "1",
		Date:          inventory.MustParseDate("2025-06-01"),
		OpeningStock:  inventory.Q(20),
		Purchase:      inventory.Q(10),
		Sales:         inventory.Q(25),
		PhysicalStock: inventory.Q(4),
	}); err != nil {
		t.Fatal(err)
	}
	return snap
}

func TestDashboard(t *testing.T) {
	snap := auditedSnapshot(t)

	md := Dashboard(snap, "")
	for _, want := range []string{
		"# Dashboard",
		"| Total Items | 3 |",
		"| Total Shortages | 1 |",
		"| Milk 1L | 4 | 20 | LOW STOCK |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("dashboard misses %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "AI Smart Insights") {
		t.Error("dashboard should skip the insight section when no insight is given")
	}

	md = Dashboard(snap, "Stock is running low.")
	if !strings.Contains(md, "## AI Smart Insights") || !strings.Contains(md, "Stock is running low.") {
		t.Errorf("dashboard misses the insight block:\n%s", md)
	}
}

func TestReport(t *testing.T) {
	snap := auditedSnapshot(t)
	on := inventory.MustParseDate("2025-06-01")

	md := Report(snap, on, snap.Filter(on, "all"))
	for _, want := range []string{
		"# Inventory Report - 2025-06-01",
		"| 2025-06-01 | Milk 1L | 20 | 10 | 25 | 5 | 4 | -1 |",
		"Purchase: 10 | Sales: 25 | Shortage: 1",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report misses %q:\n%s", want, md)
		}
	}

	empty := Report(snap, inventory.MustParseDate("2025-06-02"), nil)
	if !strings.Contains(empty, "No transactions found for this date.") {
		t.Errorf("empty report = %q", empty)
	}
}

func TestRegistry(t *testing.T) {
	snap := auditedSnapshot(t)
	md := Registry(snap)
	for _, want := range []string{
		"Live Inventory Registry",
		"| Milk 1L (pkts) | Grocery | 20 | 4 | LOW STOCK | 2025-06-01 |",
		"| Wheat Flour 5kg (bags) | Grocery | 10 | 0 | LOW STOCK | Never |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("registry misses %q:\n%s", want, md)
		}
	}

	if got := Registry(inventory.NewSnapshot()); !strings.Contains(got, "No items found") {
		t.Errorf("empty registry = %q", got)
	}
}

func TestTransactions(t *testing.T) {
	snap := auditedSnapshot(t)
	md := Transactions(snap, snap.Transactions)
	if !strings.Contains(md, "| 2025-06-01 | Milk 1L | 20 | 10 | 25 | 5 | 4 | -1 |") {
		t.Errorf("transaction table is wrong:\n%s", md)
	}

	line := Transaction(snap, snap.Transactions[0])
	if !strings.Contains(line, "1 missing") {
		t.Errorf("transaction summary = %q", line)
	}
}
