package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type listCmd struct {
	query string
	brand string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list tracked products and their cheapest price" }
func (*listCmd) Usage() string {
	return `list [-q <query>] [-brand <brand>]

  Lists tracked products with their cheapest current full price.
  - q: keep only products whose name or barcode contains the query.
  - brand: show the price at that brand instead of the cheapest one.
    Defaults to the selected brand when one is set.

Usage Examples:
$ pw list
$ pw list -q milk -brand Lidl
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Filter by name or barcode")
	f.StringVar(&c.brand, "brand", "", "Show prices at this brand only")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l := loadLedger()
	brand := selectedBrand(c.brand)

	var b strings.Builder
	b.WriteString("| Barcode | Name | Price | Brand |\n")
	b.WriteString("|---|---|---:|---|\n")
	count := 0
	for p := range l.Search(c.query) {
		count++
		if brand != "" {
			entry := p.Supermarket(brand)
			if entry == nil {
				continue
			}
			price := "-"
			if current, ok := entry.CurrentFullPrice(); ok {
				price = current.Price.String()
			}
			if d, ok := entry.Discount(); ok {
				price = fmt.Sprintf("%s (sale %s)", price, d.Price)
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Barcode(), p.Name(), price, entry.Brand())
			continue
		}
		if cheapestBrand, record, ok := p.CheapestFull(); ok {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", p.Barcode(), p.Name(), record.Price, cheapestBrand)
		} else {
			fmt.Fprintf(&b, "| %s | %s | - | - |\n", p.Barcode(), p.Name())
		}
	}

	if count == 0 {
		fmt.Println("No products tracked yet.")
		return subcommands.ExitSuccess
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
