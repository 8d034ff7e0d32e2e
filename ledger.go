package pennywise

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
)

// Ledger owns the current dataset: every known product and the registry of
// retail brands. It is the single source of truth for the state of the
// tracker, and every mutation keeps its invariants:
//
//   - exactly one product per barcode,
//   - exactly one brand entry per (product, brand), brands compared
//     case-insensitively but stored in their first-seen casing,
//   - full price histories sorted by timestamp with unique timestamps,
//   - the brand registry sorted, and covering every brand any product uses.
//
// A Ledger is not safe for concurrent use: the tracker has a single
// interactive user and every operation runs to completion synchronously.
type Ledger struct {
	products []*Product          // sorted by barcode
	index    map[string]*Product // index products by barcode
	brands   []string            // sorted, unique case-insensitively

	now func() int64 // clock, epoch milliseconds
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		index: make(map[string]*Product),
		now:   func() int64 { return time.Now().UnixMilli() },
	}
}

// Product returns the product with this exact barcode, or nil if unknown.
func (l *Ledger) Product(barcode string) *Product { return l.index[barcode] }

// Products returns the number of products in the ledger.
func (l *Ledger) Products() int { return len(l.products) }

// AllProducts iterates over all products, by ascending barcode.
func (l *Ledger) AllProducts() iter.Seq[*Product] {
	return func(yield func(*Product) bool) {
		for _, p := range l.products {
			if !yield(p) {
				return
			}
		}
	}
}

// AllBrands iterates over the brand registry in lexicographic order.
func (l *Ledger) AllBrands() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, b := range l.brands {
			if !yield(b) {
				return
			}
		}
	}
}

// Search iterates over products whose name contains 'query'
// (case-insensitive) or whose barcode contains it verbatim. An empty query
// matches everything.
func (l *Ledger) Search(query string) iter.Seq[*Product] {
	q := strings.ToLower(query)
	return func(yield func(*Product) bool) {
		for _, p := range l.products {
			if strings.Contains(strings.ToLower(p.name), q) || strings.Contains(p.barcode, query) {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// RecordPrice records one price observation for (barcode, brand).
//
// The product is created if the barcode is unknown, named 'nameIfNew' or the
// barcode itself. A non-empty 'nameIfNew' renames an existing product too.
// The brand entry is created if needed and 'brand' is registered.
//
// A discounted observation replaces the current promotional price. A full
// observation is appended to the history, stamped now; the history is never
// overwritten.
func (l *Ledger) RecordPrice(barcode, brand string, price Cents, discounted bool, nameIfNew string) error {
	barcode = strings.TrimSpace(barcode)
	brand = strings.TrimSpace(brand)
	if barcode == "" {
		return fmt.Errorf("invalid price record: barcode is required")
	}
	if brand == "" {
		return fmt.Errorf("invalid price record: brand is required")
	}
	if price < 0 {
		return fmt.Errorf("invalid price record: price %d is negative", price)
	}

	p := l.index[barcode]
	if p == nil {
		name := strings.TrimSpace(nameIfNew)
		if name == "" {
			name = barcode
		}
		p = &Product{barcode: barcode, name: name}
		l.insert(p)
	} else if name := strings.TrimSpace(nameIfNew); name != "" {
		p.name = name
	}

	entry := p.Supermarket(brand)
	if entry == nil {
		entry = &SupermarketPriceData{brand: brand}
		p.addSupermarket(entry)
	}

	stamp := l.now()
	if discounted {
		entry.discounted = &PriceRecord{Price: price, Timestamp: stamp}
	} else {
		// Two observations within the same millisecond would collide on
		// their timestamp key; nudge the clock so both are retained.
		if last, _ := entry.fullPrices.Latest(); stamp <= last {
			stamp = last + 1
		}
		entry.fullPrices.Append(stamp, price)
	}

	l.RegisterBrand(brand)
	return nil
}

// Rename sets the product's display name. The name is trimmed, and an empty
// name falls back to the barcode. Unknown barcodes are a no-op.
func (l *Ledger) Rename(barcode, name string) {
	p := l.index[barcode]
	if p == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = p.barcode
	}
	p.name = name
}

// ClearDiscount removes the active promotional price for (barcode, brand).
// Unknown barcodes or brands are a no-op; the full price history is untouched.
func (l *Ledger) ClearDiscount(barcode, brand string) {
	p := l.index[barcode]
	if p == nil {
		return
	}
	if entry := p.Supermarket(brand); entry != nil {
		entry.discounted = nil
	}
}

// RegisterBrand adds a brand to the registry. Registration is idempotent:
// a brand already present under any casing is left as is. Blank names are
// ignored.
func (l *Ledger) RegisterBrand(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, b := range l.brands {
		if strings.EqualFold(b, name) {
			return
		}
	}
	l.brands = append(l.brands, name)
	slices.Sort(l.brands)
}

// Delete removes the product with this barcode. Unknown barcodes are a no-op.
func (l *Ledger) Delete(barcode string) {
	if _, ok := l.index[barcode]; !ok {
		return
	}
	delete(l.index, barcode)
	l.products = slices.DeleteFunc(l.products, func(p *Product) bool {
		return p.barcode == barcode
	})
}

// Clear wipes the whole dataset: products and brand registry.
func (l *Ledger) Clear() {
	l.products = nil
	l.brands = nil
	l.index = make(map[string]*Product)
}

// insert adds a product, keeping the slice sorted by barcode.
func (l *Ledger) insert(p *Product) {
	l.index[p.barcode] = p
	l.products = append(l.products, p)
	slices.SortFunc(l.products, func(a, b *Product) int {
		return strings.Compare(a.barcode, b.barcode)
	})
}
