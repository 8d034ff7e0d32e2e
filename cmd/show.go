package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
)

type showCmd struct {
	barcode string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show one product across all brands" }
func (*showCmd) Usage() string {
	return `show -barcode <barcode>

  Shows everything known about one product: its current full price at each
  brand, cheapest first, with active discounts.

Usage Examples:
$ pw show -barcode 5000112637922
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.barcode, "barcode", "", "Product barcode (required)")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.barcode == "" {
		fmt.Fprintln(os.Stderr, "Error: -barcode flag is required.")
		return subcommands.ExitUsageError
	}

	l := loadLedger()
	p := l.Product(c.barcode)
	if p == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown barcode %q\n", c.barcode)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\nBarcode: %s\n\n", p.Name(), p.Barcode())
	b.WriteString("| Brand | Current | Since | Sale |\n")
	b.WriteString("|---|---:|---|---:|\n")
	for _, entry := range p.ByCurrentPrice() {
		price, since := "-", "-"
		if current, ok := entry.CurrentFullPrice(); ok {
			price = current.Price.String()
			since = formatStamp(current.Timestamp)
		}
		sale := "-"
		if d, ok := entry.Discount(); ok {
			sale = d.Price.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", entry.Brand(), price, since, sale)
	}

	if brand, record, ok := p.CheapestDiscount(); ok {
		fmt.Fprintf(&b, "\nBest deal: %s on sale at %s.\n", record.Price, brand)
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// formatStamp renders an epoch-milliseconds timestamp as a local date.
func formatStamp(stamp int64) string {
	return time.UnixMilli(stamp).Format("2006-01-02")
}
