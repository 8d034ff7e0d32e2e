package pennywise

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and easy to merge into
// another dataset.

// CurrentSchemaVersion is the schema version stamped on every export.
//
// The version is carried through decode and merge untouched; there are no
// version-gated migrations yet since only one schema version exists.
const CurrentSchemaVersion = 1

// Snapshot is a complete, portable, timestamped copy of the dataset.
type Snapshot struct {
	Products   []*Product
	Brands     []string
	ExportedAt int64 // epoch milliseconds
	Version    int
}

// the readable version of the format can be summarized by a few types.

type jrecord struct {
	Price     int64 `json:"price"`
	Timestamp int64 `json:"timestamp"`
}

type jsupermarket struct {
	Brand            string    `json:"brand"`
	FullPriceHistory []jrecord `json:"fullPriceHistory"`
	DiscountedPrice  *jrecord  `json:"discountedPrice"`
}

type jproduct struct {
	Barcode      string         `json:"barcode"`
	Name         string         `json:"name"`
	Supermarkets []jsupermarket `json:"supermarkets"`
}

type jsnapshot struct {
	Products   []jproduct `json:"products"`
	Brands     []string   `json:"brands"`
	ExportedAt int64      `json:"exportedAt"`
	Version    int        `json:"version"`
}

// Snapshot returns a portable copy of the ledger's dataset, stamped now.
func (l *Ledger) Snapshot() *Snapshot {
	s := &Snapshot{
		ExportedAt: l.now(),
		Version:    CurrentSchemaVersion,
	}
	for p := range l.AllProducts() {
		s.Products = append(s.Products, p.clone())
	}
	for b := range l.AllBrands() {
		s.Brands = append(s.Brands, b)
	}
	return s
}

// EncodeSnapshot writes the ledger's dataset to 'w' in the import/export
// format, a single indented JSON document.
func EncodeSnapshot(w io.Writer, l *Ledger) error {
	js := snapshotProxy(l.Snapshot())
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(js); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// snapshotProxy converts a snapshot into its serializable shape.
func snapshotProxy(s *Snapshot) jsnapshot {
	js := jsnapshot{
		// Empty collections are exported as [], not null: the format
		// promises sequences.
		Products:   make([]jproduct, 0, len(s.Products)),
		Brands:     append(make([]string, 0, len(s.Brands)), s.Brands...),
		ExportedAt: s.ExportedAt,
		Version:    s.Version,
	}
	for _, p := range s.Products {
		jp := jproduct{Barcode: p.barcode, Name: p.name}
		for _, sm := range p.supermarkets {
			jsm := jsupermarket{Brand: sm.brand, FullPriceHistory: make([]jrecord, 0, sm.fullPrices.Len())}
			for stamp, price := range sm.fullPrices.Values() {
				jsm.FullPriceHistory = append(jsm.FullPriceHistory, jrecord{Price: int64(price), Timestamp: stamp})
			}
			if sm.discounted != nil {
				jsm.DiscountedPrice = &jrecord{Price: int64(sm.discounted.Price), Timestamp: sm.discounted.Timestamp}
			}
			jp.Supermarkets = append(jp.Supermarkets, jsm)
		}
		js.Products = append(js.Products, jp)
	}
	return js
}

// DecodeSnapshot reads a snapshot from 'r' and validates its whole shape
// before constructing any domain value: a malformed document is rejected as a
// unit, never partially applied.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read snapshot: %w", err)
	}

	// The outer shape is probed with raw messages first, so that a missing
	// or non-sequence collection fails before any product is decoded.
	var probe struct {
		Products   json.RawMessage `json:"products"`
		Brands     json.RawMessage `json:"brands"`
		ExportedAt int64           `json:"exportedAt"`
		Version    int             `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	if !isJSONArray(probe.Products) {
		return nil, fmt.Errorf("invalid snapshot: %q must be a sequence", "products")
	}
	if !isJSONArray(probe.Brands) {
		return nil, fmt.Errorf("invalid snapshot: %q must be a sequence", "brands")
	}
	if probe.Version < 1 {
		return nil, fmt.Errorf("invalid snapshot: unsupported schema version %d", probe.Version)
	}

	var js jsnapshot
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	s := &Snapshot{
		Brands:     js.Brands,
		ExportedAt: js.ExportedAt,
		Version:    js.Version,
	}
	for _, jp := range js.Products {
		if jp.Barcode == "" {
			return nil, fmt.Errorf("invalid snapshot: product with an empty barcode")
		}
		p := &Product{barcode: jp.Barcode, name: jp.Name}
		if p.name == "" {
			p.name = p.barcode
		}
		for _, jsm := range jp.Supermarkets {
			if jsm.Brand == "" {
				return nil, fmt.Errorf("invalid snapshot: product %q has an entry with an empty brand", jp.Barcode)
			}
			if p.Supermarket(jsm.Brand) != nil {
				return nil, fmt.Errorf("invalid snapshot: product %q has duplicate entries for brand %q", jp.Barcode, jsm.Brand)
			}
			sm := &SupermarketPriceData{brand: jsm.Brand}
			for _, jr := range jsm.FullPriceHistory {
				if jr.Price < 0 {
					return nil, fmt.Errorf("invalid snapshot: product %q has a negative price at %q", jp.Barcode, jsm.Brand)
				}
				// Append keeps the history sorted and timestamps unique,
				// whatever order the file lists them in.
				sm.fullPrices.Append(jr.Timestamp, Cents(jr.Price))
			}
			if jr := jsm.DiscountedPrice; jr != nil {
				if jr.Price < 0 {
					return nil, fmt.Errorf("invalid snapshot: product %q has a negative discount at %q", jp.Barcode, jsm.Brand)
				}
				sm.discounted = &PriceRecord{Price: Cents(jr.Price), Timestamp: jr.Timestamp}
			}
			p.addSupermarket(sm)
		}
		s.Products = append(s.Products, p)
	}
	return s, nil
}

// isJSONArray reports whether the raw message is present and is a JSON array.
func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
