package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/starclub/inventory"
	"google.golang.org/genai"
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

func output(t *testing.T, resp *genai.FunctionResponse) string {
	t.Helper()
	out, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("function response has no output: %+v", resp.Response)
	}
	return out
}

func TestLowStockItemsTool(t *testing.T) {
	snap := auditedSnapshot(t)

	resp := lowStockItems(snap).Call(context.Background(), "call-1", nil)
	out := output(t, resp)
	if !strings.Contains(out, "Milk 1L: 4 of 20 minimum") {
		t.Errorf("low stock output misses milk: %q", out)
	}
	// Unaudited items sit at 0, below their thresholds.
	if !strings.Contains(out, "Wheat Flour 5kg") || !strings.Contains(out, "Lays Chips") {
		t.Errorf("low stock output misses unaudited items: %q", out)
	}
}

func TestRecentShortagesTool(t *testing.T) {
	snap := auditedSnapshot(t)

	resp := recentShortages(snap).Call(context.Background(), "call-2", nil)
	out := output(t, resp)
	if !strings.Contains(out, "2025-06-01: Milk 1L missing 1") {
		t.Errorf("shortage output = %q", out)
	}

	empty := inventory.NewSnapshot()
	resp = recentShortages(empty).Call(context.Background(), "call-3", nil)
	if out := output(t, resp); out != "no shortages on record" {
		t.Errorf("empty ledger shortage output = %q", out)
	}
}

func TestLibraryDispatch(t *testing.T) {
	snap := auditedSnapshot(t)
	lib := NewLibrary([]Function{lowStockItems(snap), recentShortages(snap)})

	resp := lib(context.Background(), &genai.FunctionCall{ID: "c1", Name: "LowStockItems"})
	if _, ok := resp.Response["output"]; !ok {
		t.Errorf("dispatch to LowStockItems failed: %+v", resp.Response)
	}

	resp = lib(context.Background(), &genai.FunctionCall{ID: "c2", Name: "NoSuchTool"})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("dispatch to an unknown tool should report an error: %+v", resp.Response)
	}
}
