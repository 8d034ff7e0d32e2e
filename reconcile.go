package pennywise

// ImportSummary reports what a snapshot merge changed, for user feedback.
type ImportSummary struct {
	ProductsAdded   int // products unknown to the ledger, inserted whole
	ProductsUpdated int // products matched by barcode and reconciled
	BrandsAdded     int // brands new to the registry
}

// Merge reconciles a snapshot into the ledger.
//
// The merge only adds information: no price observation, product or brand is
// ever discarded. Products match on their exact barcode, brand entries match
// case-insensitively. Merging the same snapshot twice is a no-op the second
// time, and the result does not depend on the ordering of the snapshot's
// product and brand lists.
func (l *Ledger) Merge(s *Snapshot) ImportSummary {
	var sum ImportSummary

	for _, imported := range s.Products {
		existing := l.index[imported.barcode]
		if existing == nil {
			l.insert(imported.clone())
			sum.ProductsAdded++
			continue
		}

		for _, sm := range imported.supermarkets {
			entry := existing.Supermarket(sm.brand)
			if entry == nil {
				existing.addSupermarket(sm.clone())
				continue
			}
			// Full history: union keyed by timestamp. On a collision the
			// existing record wins, even when the imported price differs.
			entry.fullPrices.Union(&sm.fullPrices)
			// Discount: the more recent one wins.
			if d, ok := sm.Discount(); ok {
				if cur, has := entry.Discount(); !has || d.Timestamp > cur.Timestamp {
					entry.discounted = &d
				}
			}
		}

		// Adopt the imported name only over a placeholder: a product never
		// named by the user carries its barcode as its name.
		if imported.name != "" && existing.name == existing.barcode {
			existing.name = imported.name
		}
		sum.ProductsUpdated++
	}

	for _, brand := range s.Brands {
		before := len(l.brands)
		l.RegisterBrand(brand)
		if len(l.brands) > before {
			sum.BrandsAdded++
		}
	}

	return sum
}
