package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type endSaleCmd struct {
	barcode string
	brand   string
}

func (*endSaleCmd) Name() string     { return "end-sale" }
func (*endSaleCmd) Synopsis() string { return "clear a product's promotional price at a brand" }
func (*endSaleCmd) Usage() string {
	return `end-sale -barcode <barcode> [-brand <brand>]

  Removes the active promotional price for (product, brand). The full price
  history is untouched: ending a sale never loses an observation.
  - brand: defaults to the selected brand.

Usage Examples:
$ pw end-sale -barcode 5000112637922 -brand Lidl
`
}

func (c *endSaleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.barcode, "barcode", "", "Product barcode (required)")
	f.StringVar(&c.brand, "brand", "", "Retail brand (defaults to the selected brand)")
}

func (c *endSaleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.barcode == "" {
		fmt.Fprintln(os.Stderr, "Error: -barcode flag is required.")
		return subcommands.ExitUsageError
	}
	brand := selectedBrand(c.brand)
	if brand == "" {
		fmt.Fprintln(os.Stderr, "Error: no -brand given and no brand selected.")
		return subcommands.ExitUsageError
	}

	l := loadLedger()
	l.ClearDiscount(c.barcode, brand)
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Cleared sale price for %q at %s\n", c.barcode, brand)
	return subcommands.ExitSuccess
}
