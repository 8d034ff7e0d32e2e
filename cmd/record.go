package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pennywise"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type recordCmd struct {
	barcode    string
	brand      string
	price      string
	name       string
	discounted bool
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record an observed price for a product" }
func (*recordCmd) Usage() string {
	return `record -barcode <barcode> -price <euros> [-brand <brand>] [-name <name>] [-d]

  Records one price observation:
  - barcode: the product's barcode (e.g., an EAN-13 code).
  - price: the shelf price in euros (e.g., "1.99").
  - brand: the retail brand. Defaults to the selected brand (see select-brand).
  - name: the product's display name; names the product on first sight.
  - d: the price is a promotional (discounted) price. It replaces the
    current discount instead of extending the full price history.

Usage Examples:
$ pw record -barcode 5000112637922 -brand Lidl -price 1.50 -name "Milk 1L"
$ pw record -barcode 5000112637922 -brand Lidl -price 1.19 -d
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.barcode, "barcode", "", "Product barcode (required)")
	f.StringVar(&c.brand, "brand", "", "Retail brand (defaults to the selected brand)")
	f.StringVar(&c.price, "price", "", "Observed price in euros (required, positive)")
	f.StringVar(&c.name, "name", "", "Product display name")
	f.BoolVar(&c.discounted, "d", false, "Record as a promotional price")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.barcode == "" || c.price == "" {
		fmt.Fprintln(os.Stderr, "Error: -barcode and -price flags are required.")
		return subcommands.ExitUsageError
	}
	brand := selectedBrand(c.brand)
	if brand == "" {
		fmt.Fprintln(os.Stderr, "Error: no -brand given and no brand selected.")
		return subcommands.ExitUsageError
	}

	price, err := parsePrice(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}

	l := loadLedger()
	if err := l.RecordPrice(c.barcode, brand, price, c.discounted, c.name); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}

	kind := "full price"
	if c.discounted {
		kind = "discounted price"
	}
	fmt.Printf("Recorded %s %s for %q at %s\n", kind, price, c.barcode, brand)
	return subcommands.ExitSuccess
}

// parsePrice converts a user-typed euro amount into cents.
// Prices must be positive and carry no sub-cent precision.
func parsePrice(s string) (pennywise.Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	cents := d.Shift(2)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("sub-cent precision is not allowed")
	}
	if !cents.IsPositive() {
		return 0, fmt.Errorf("price must be positive")
	}
	return pennywise.Cents(cents.IntPart()), nil
}
