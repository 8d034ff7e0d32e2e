package pennywise

import (
	"github.com/shopspring/decimal"
)

// PriceStats summarizes one brand's full price history.
type PriceStats struct {
	Brand   string
	Count   int
	Min     Cents
	Max     Cents
	Average Cents // arithmetic mean, rounded to the nearest cent
}

// Stats computes per-brand statistics over the product's full price
// histories, in brand order. Brands with an empty history are skipped.
func (p *Product) Stats() []PriceStats {
	var all []PriceStats
	for _, sm := range p.supermarkets {
		if sm.fullPrices.Len() == 0 {
			continue
		}
		st := PriceStats{Brand: sm.brand, Count: sm.fullPrices.Len()}
		sum := decimal.Zero
		first := true
		for _, price := range sm.fullPrices.Values() {
			if first || price < st.Min {
				st.Min = price
			}
			if first || price > st.Max {
				st.Max = price
			}
			first = false
			sum = sum.Add(decimal.NewFromInt(int64(price)))
		}
		mean := sum.Div(decimal.NewFromInt(int64(st.Count))).Round(0)
		st.Average = Cents(mean.IntPart())
		all = append(all, st)
	}
	return all
}
