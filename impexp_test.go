package inventory

import (
	"bytes"
	"strings"
	"testing"
)

func reportFixture(t *testing.T) (*Snapshot, []Transaction) {
	t.Helper()
	s := SeedSnapshot()
	day := MustParseDate("2025-06-01")
	if _, err := s.Record(EntryInput{
		ItemID: "1", Date: day,
		OpeningStock: Q(20), Purchase: Q(10), Sales: Q(25), PhysicalStock: Q(4),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Record(EntryInput{
		ItemID: "ghost", Date: day,
		OpeningStock: Q(5), Purchase: Q(0), Sales: Q(0), PhysicalStock: Q(5),
	}); err != nil {
		t.Fatal(err)
	}
	return s, s.Filter(day, "all")
}

func TestExportCSV(t *testing.T) {
	s, txs := reportFixture(t)

	var buf bytes.Buffer
	if err := ExportCSV(&buf, s, txs); err != nil {
		t.Fatalf("ExportCSV() returned an unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("CSV has %d lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "Date,Item,Opening,Purchase,Sales,Closing,Physical,Shortage" {
		t.Errorf("CSV header = %q", lines[0])
	}
	// Most recent first: the dangling-item entry was recorded last.
	if lines[1] != "2025-06-01,Unknown,5,0,0,5,5,0" {
		t.Errorf("CSV row 1 = %q", lines[1])
	}
	if lines[2] != "2025-06-01,Milk 1L,20,10,25,5,4,-1" {
		t.Errorf("CSV row 2 = %q", lines[2])
	}
}

func TestShareMessage(t *testing.T) {
	s, txs := reportFixture(t)

	msg := ShareMessage(s, MustParseDate("2025-06-01"), txs)

	if !strings.HasPrefix(msg, "*Star Club Inventory Report - 2025-06-01*\n\n") {
		t.Errorf("share message header is wrong:\n%s", msg)
	}
	for _, want := range []string{
		"*Milk 1L*\n- Op: 20, Pur: 10, Sal: 25\n- Phsy: 4, Short: -1",
		"*Unknown*\n- Op: 5, Pur: 0, Sal: 0\n- Phsy: 5, Short: 0",
		"*Totals*\n- Pur: 10\n- Sal: 25\n- Short: 1",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("share message misses %q:\n%s", want, msg)
		}
	}
}
