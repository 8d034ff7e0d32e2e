package pennywise

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// this file contains code to persist the dataset in a single human readable
// JSON file. The persisted document is the same shape as the import/export
// snapshot, so a ledger file is itself a valid snapshot to merge elsewhere.

// LoadLedger reads the ledger persisted at 'path'.
//
// A missing or unreadable file degrades to an empty ledger with a warning,
// never an error: the tracker must stay usable even when its state is gone.
func LoadLedger(path string) *Ledger {
	l := NewLedger()

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: cannot open ledger file %q: %v, starting empty", path, err)
		}
		return l
	}
	defer f.Close()

	snap, err := DecodeSnapshot(f)
	if err != nil {
		log.Printf("warning: cannot read ledger file %q: %v, starting empty", path, err)
		return l
	}

	// Merging into an empty ledger rebuilds the dataset and revalidates the
	// invariants in one move.
	l.Merge(snap)
	return l
}

// SaveLedger persists the whole dataset to 'path' as one atomic write: the
// document is written to a temporary file in the same directory and renamed
// into place, so a failed save leaves the previous state intact.
func SaveLedger(path string, l *Ledger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeSnapshot(tmp, l); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write ledger file %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write ledger file %q: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not save ledger file %q: %w", path, err)
	}
	return nil
}

// The currently selected brand is a UI convenience filter, persisted on its
// own next to the ledger file and not part of the dataset proper.

// brandFile returns the sidecar path holding the selected brand.
func brandFile(ledgerPath string) string { return ledgerPath + ".brand" }

// LoadSelectedBrand returns the persisted selected brand, or "" if none.
func LoadSelectedBrand(ledgerPath string) string {
	data, err := os.ReadFile(brandFile(ledgerPath))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveSelectedBrand persists the selected brand. An empty brand clears it.
func SaveSelectedBrand(ledgerPath, brand string) error {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		if err := os.Remove(brandFile(ledgerPath)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("could not clear selected brand: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(brandFile(ledgerPath), []byte(brand+"\n"), 0644); err != nil {
		return fmt.Errorf("could not save selected brand: %w", err)
	}
	return nil
}
