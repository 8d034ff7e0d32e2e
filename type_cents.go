package pennywise

import (
	"github.com/Rhymond/go-money"
)

// Cents is a price expressed in minor currency units: 1099 means €10.99.
//
// Prices are kept as exact integers end to end, the currency only matters
// for display.
type Cents int64

// displayCurrency is the currency used to render prices.
// Observed prices are stored without a currency, like on the shelf tag.
const displayCurrency = money.EUR

// String returns the price formatted in the display currency.
func (c Cents) String() string {
	return money.New(int64(c), displayCurrency).Display()
}
