package pennywise

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")

	l := newTestLedger()
	l.RecordPrice("5000112637922", "Lidl", 150, false, "Milk 1L")
	l.RecordPrice("5000112637922", "Aldi", 120, true, "")

	if err := SaveLedger(path, l); err != nil {
		t.Fatalf("SaveLedger() = %v want nil", err)
	}

	loaded := LoadLedger(path)
	if got, want := snapshotBytes(t, loaded), snapshotBytes(t, l); got != want {
		t.Errorf("loaded dataset differs:\n%s\nwant:\n%s", got, want)
	}
}

func TestLoadLedger_missingFileIsEmpty(t *testing.T) {
	l := LoadLedger(filepath.Join(t.TempDir(), "nope.json"))
	if l == nil || l.Products() != 0 {
		t.Error("LoadLedger() on a missing file must return an empty ledger")
	}
}

func TestLoadLedger_corruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	l := LoadLedger(path)
	if l == nil || l.Products() != 0 {
		t.Error("LoadLedger() on a corrupt file must degrade to an empty ledger")
	}
}

func TestSaveLedger_overwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")

	l := newTestLedger()
	l.RecordPrice("123", "Lidl", 100, false, "")
	if err := SaveLedger(path, l); err != nil {
		t.Fatal(err)
	}

	l.RecordPrice("123", "Lidl", 110, false, "")
	if err := SaveLedger(path, l); err != nil {
		t.Fatal(err)
	}

	loaded := LoadLedger(path)
	if got := loaded.Product("123").Supermarket("Lidl").HistoryLen(); got != 2 {
		t.Errorf("HistoryLen() = %v want 2", got)
	}

	// No leftover temp files.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries want only the ledger file", len(entries))
	}
}

func TestSelectedBrand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.json")

	if got := LoadSelectedBrand(path); got != "" {
		t.Errorf("LoadSelectedBrand() = %q want empty", got)
	}

	if err := SaveSelectedBrand(path, "Lidl"); err != nil {
		t.Fatalf("SaveSelectedBrand() = %v want nil", err)
	}
	if got := LoadSelectedBrand(path); got != "Lidl" {
		t.Errorf("LoadSelectedBrand() = %q want %q", got, "Lidl")
	}

	if err := SaveSelectedBrand(path, ""); err != nil {
		t.Fatalf("SaveSelectedBrand(clear) = %v want nil", err)
	}
	if got := LoadSelectedBrand(path); got != "" {
		t.Errorf("LoadSelectedBrand() after clear = %q want empty", got)
	}
	// Clearing twice is fine.
	if err := SaveSelectedBrand(path, ""); err != nil {
		t.Errorf("second clear = %v want nil", err)
	}
}
