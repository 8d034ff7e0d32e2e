package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type nameCmd struct {
	barcode string
	name    string
}

func (*nameCmd) Name() string     { return "name" }
func (*nameCmd) Synopsis() string { return "rename a product" }
func (*nameCmd) Usage() string {
	return `name -barcode <barcode> -name <name>

  Sets a product's display name. An empty name falls back to the barcode.

Usage Examples:
$ pw name -barcode 5000112637922 -name "Whole Milk 1L"
`
}

func (c *nameCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.barcode, "barcode", "", "Product barcode (required)")
	f.StringVar(&c.name, "name", "", "New display name")
}

func (c *nameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.barcode == "" {
		fmt.Fprintln(os.Stderr, "Error: -barcode flag is required.")
		return subcommands.ExitUsageError
	}

	l := loadLedger()
	if l.Product(c.barcode) == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown barcode %q\n", c.barcode)
		return subcommands.ExitFailure
	}
	l.Rename(c.barcode, c.name)
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Renamed %q to %q\n", c.barcode, l.Product(c.barcode).Name())
	return subcommands.ExitSuccess
}
