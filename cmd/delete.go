package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	barcode string
	force   bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a product and all its price history" }
func (*deleteCmd) Usage() string {
	return `delete -barcode <barcode> -f

  Deletes a product and every price ever recorded for it. This is the only
  operation that discards history, so it requires the -f flag.

Usage Examples:
$ pw delete -barcode 5000112637922 -f
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.barcode, "barcode", "", "Product barcode (required)")
	f.BoolVar(&c.force, "f", false, "Confirm the deletion")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.barcode == "" {
		fmt.Fprintln(os.Stderr, "Error: -barcode flag is required.")
		return subcommands.ExitUsageError
	}
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: deleting a product discards its history, use -f to confirm.")
		return subcommands.ExitUsageError
	}

	l := loadLedger()
	if l.Product(c.barcode) == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown barcode %q\n", c.barcode)
		return subcommands.ExitFailure
	}
	l.Delete(c.barcode)
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted %q\n", c.barcode)
	return subcommands.ExitSuccess
}
