package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type historyCmd struct {
	barcode string
	brand   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show a product's full price history" }
func (*historyCmd) Usage() string {
	return `history -barcode <barcode> [-brand <brand>]

  Shows the full price history of a product, with per-brand statistics
  (observations, minimum, maximum, average).
  - brand: restrict to one brand.

Usage Examples:
$ pw history -barcode 5000112637922
$ pw history -barcode 5000112637922 -brand Lidl
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.barcode, "barcode", "", "Product barcode (required)")
	f.StringVar(&c.brand, "brand", "", "Restrict to one brand")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	fmt.Fprintf(&b, "# %s price history\n\n", p.Name())
	for entry := range p.Supermarkets() {
		if c.brand != "" && !entry.Is(c.brand) {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", entry.Brand())
		if entry.HistoryLen() == 0 {
			b.WriteString("No full price observed yet.\n\n")
			continue
		}
		b.WriteString("| Date | Price |\n|---|---:|\n")
		for rec := range entry.FullPrices() {
			fmt.Fprintf(&b, "| %s | %s |\n", formatStamp(rec.Timestamp), rec.Price)
		}
		b.WriteString("\n")
	}

	stats := p.Stats()
	if len(stats) > 0 {
		b.WriteString("## Statistics\n\n")
		b.WriteString("| Brand | Obs. | Min | Max | Average |\n")
		b.WriteString("|---|---:|---:|---:|---:|\n")
		for _, st := range stats {
			if c.brand != "" && !strings.EqualFold(st.Brand, c.brand) {
				continue
			}
			fmt.Fprintf(&b, "| %s | %d | %s | %s | %s |\n", st.Brand, st.Count, st.Min, st.Max, st.Average)
		}
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
