package inventory

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStore_LoadSeedsWhenMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "inventory.json"))

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on a missing file returned an unexpected error: %v", err)
	}
	if len(snap.Items) != 3 || len(snap.Categories) != 2 {
		t.Errorf("seed snapshot has %d items and %d categories, want 3 and 2", len(snap.Items), len(snap.Categories))
	}
	if len(snap.Transactions) != 0 {
		t.Errorf("seed snapshot has %d transactions, want none", len(snap.Transactions))
	}
	if snap.Items[0].Name != "Milk 1L" {
		t.Errorf("seed item 0 = %q, want Milk 1L", snap.Items[0].Name)
	}
}

func TestStore_LoadIsIdempotent(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "inventory.json"))
	snap := SeedSnapshot()
	if _, err := snap.Record(EntryInput{ItemID: "1", Date: MustParseDate("2025-06-01"), OpeningStock: Q(2), PhysicalStock: Q(2)}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(snap); err != nil {
		t.Fatal(err)
	}

	first, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}

	if len(first.Transactions) != len(second.Transactions) {
		t.Fatalf("two loads disagree on transaction count: %d vs %d", len(first.Transactions), len(second.Transactions))
	}
	for i := range first.Transactions {
		if !first.Transactions[i].Equal(second.Transactions[i]) {
			t.Errorf("two loads without an intervening save disagree on transaction %d", i)
		}
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "inventory.json"))
	snap := SeedSnapshot()
	tx, err := snap.Record(EntryInput{
		ItemID:        "1",
		Date:          MustParseDate("2025-06-01"),
		OpeningStock:  Q(20),
		Purchase:      Q(10),
		Sales:         Q(25),
		PhysicalStock: Q(4),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := store.Save(snap); err != nil {
		t.Fatalf("Save() returned an unexpected error: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() returned an unexpected error: %v", err)
	}

	if len(loaded.Transactions) != 1 {
		t.Fatalf("loaded %d transactions, want 1", len(loaded.Transactions))
	}
	if !loaded.Transactions[0].Equal(tx) {
		t.Errorf("loaded transaction differs:\ngot  %+v\nwant %+v", loaded.Transactions[0], tx)
	}
	if got := loaded.LatestStockFor("1"); !got.Equal(Q(4)) {
		t.Errorf("LatestStockFor after reload = %s, want 4", got)
	}
}

func TestStore_SaveReplacesWholeDocument(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "inventory.json"))

	snap := SeedSnapshot()
	if err := store.Save(snap); err != nil {
		t.Fatal(err)
	}
	if _, err := snap.Record(EntryInput{ItemID: "2", Date: MustParseDate("2025-06-01"), OpeningStock: Q(1), PhysicalStock: Q(1)}); err != nil {
		t.Fatal(err)
	}
	// Last write wins, no merge.
	if err := store.Save(snap); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Transactions) != 1 {
		t.Errorf("loaded %d transactions after replace, want 1", len(loaded.Transactions))
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("snapshot directory holds %d files after save, want only the snapshot", len(entries))
	}
}

func TestStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewStore(path).Load(); err == nil {
		t.Error("Load() on a corrupt file should fail rather than silently reseed")
	}
}
