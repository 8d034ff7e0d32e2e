package pennywise

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/etnz/pennywise/timeline"
)

// PriceRecord is a single price observation: an amount in cents at a given
// instant. It is immutable once created.
type PriceRecord struct {
	Price     Cents
	Timestamp int64 // epoch milliseconds
}

// SupermarketPriceData holds every price observed for one product at one
// retail brand: the append-only full price history, and at most one active
// promotional price layered on top of it.
type SupermarketPriceData struct {
	brand      string // first-seen casing, identity is case-insensitive
	fullPrices timeline.History[Cents]
	discounted *PriceRecord
}

// Brand returns the brand name in its first-seen casing.
func (s *SupermarketPriceData) Brand() string { return s.brand }

// Is reports whether this entry belongs to 'brand', compared case-insensitively.
func (s *SupermarketPriceData) Is(brand string) bool { return strings.EqualFold(s.brand, brand) }

// CurrentFullPrice returns the most recent full price, or false if no full
// price was ever observed.
func (s *SupermarketPriceData) CurrentFullPrice() (PriceRecord, bool) {
	if s.fullPrices.Len() == 0 {
		return PriceRecord{}, false
	}
	stamp, price := s.fullPrices.Latest()
	return PriceRecord{Price: price, Timestamp: stamp}, true
}

// Discount returns the active promotional price, or false if there is none.
func (s *SupermarketPriceData) Discount() (PriceRecord, bool) {
	if s.discounted == nil {
		return PriceRecord{}, false
	}
	return *s.discounted, true
}

// FullPrices returns an iterator over the full price history in
// chronological order.
func (s *SupermarketPriceData) FullPrices() iter.Seq[PriceRecord] {
	return func(yield func(PriceRecord) bool) {
		for stamp, price := range s.fullPrices.Values() {
			if !yield(PriceRecord{Price: price, Timestamp: stamp}) {
				return
			}
		}
	}
}

// HistoryLen returns the number of full price observations.
func (s *SupermarketPriceData) HistoryLen() int { return s.fullPrices.Len() }

// clone returns a deep copy of the entry.
func (s *SupermarketPriceData) clone() *SupermarketPriceData {
	c := &SupermarketPriceData{brand: s.brand}
	for stamp, price := range s.fullPrices.Values() {
		c.fullPrices.Append(stamp, price)
	}
	if s.discounted != nil {
		d := *s.discounted
		c.discounted = &d
	}
	return c
}

// Product is everything known about one barcode: its display name and the
// price data collected at each brand.
type Product struct {
	barcode      string
	name         string
	supermarkets []*SupermarketPriceData // sorted by lowercased brand name
}

// Barcode returns the product's barcode, its exact-match identity.
func (p *Product) Barcode() string { return p.barcode }

// Name returns the product's display name. A product never named by the user
// carries its barcode as a placeholder name.
func (p *Product) Name() string { return p.name }

// Supermarkets returns an iterator over the product's brand entries, sorted
// by brand name.
func (p *Product) Supermarkets() iter.Seq[*SupermarketPriceData] {
	return func(yield func(*SupermarketPriceData) bool) {
		for _, s := range p.supermarkets {
			if !yield(s) {
				return
			}
		}
	}
}

// Supermarket returns the entry for 'brand' (case-insensitive), or nil.
func (p *Product) Supermarket(brand string) *SupermarketPriceData {
	for _, s := range p.supermarkets {
		if s.Is(brand) {
			return s
		}
	}
	return nil
}

// addSupermarket inserts a new brand entry, keeping the slice sorted by
// lowercased brand name.
func (p *Product) addSupermarket(s *SupermarketPriceData) {
	p.supermarkets = append(p.supermarkets, s)
	slices.SortFunc(p.supermarkets, func(a, b *SupermarketPriceData) int {
		return strings.Compare(strings.ToLower(a.brand), strings.ToLower(b.brand))
	})
}

// ByCurrentPrice returns the product's brand entries ordered cheapest current
// full price first. Entries with no full price history sort last.
func (p *Product) ByCurrentPrice() []*SupermarketPriceData {
	sorted := slices.Clone(p.supermarkets)
	slices.SortStableFunc(sorted, func(a, b *SupermarketPriceData) int {
		ra, oka := a.CurrentFullPrice()
		rb, okb := b.CurrentFullPrice()
		switch {
		case oka && !okb:
			return -1
		case !oka && okb:
			return 1
		case !oka && !okb:
			return 0
		}
		return cmp.Compare(ra.Price, rb.Price)
	})
	return sorted
}

// Cheapest returns the brand whose price, picked by 'selector', is the
// lowest across all the product's brand entries. The strict comparison keeps
// the first encountered brand on a tie. It returns false when the selector
// yields no price at all.
func (p *Product) Cheapest(selector func(*SupermarketPriceData) (PriceRecord, bool)) (brand string, record PriceRecord, ok bool) {
	for _, s := range p.supermarkets {
		r, has := selector(s)
		if has && (!ok || r.Price < record.Price) {
			brand, record, ok = s.brand, r, true
		}
	}
	return brand, record, ok
}

// CheapestFull returns the brand with the lowest current full price.
func (p *Product) CheapestFull() (string, PriceRecord, bool) {
	return p.Cheapest((*SupermarketPriceData).CurrentFullPrice)
}

// CheapestDiscount returns the brand with the lowest active promotional price.
func (p *Product) CheapestDiscount() (string, PriceRecord, bool) {
	return p.Cheapest((*SupermarketPriceData).Discount)
}

// clone returns a deep copy of the product.
func (p *Product) clone() *Product {
	c := &Product{barcode: p.barcode, name: p.name}
	for _, s := range p.supermarkets {
		c.supermarkets = append(c.supermarkets, s.clone())
	}
	return c
}
