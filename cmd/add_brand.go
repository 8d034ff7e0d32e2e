package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addBrandCmd struct {
	name string
}

func (*addBrandCmd) Name() string     { return "add-brand" }
func (*addBrandCmd) Synopsis() string { return "register a retail brand" }
func (*addBrandCmd) Usage() string {
	return `add-brand -name <brand>

  Registers a retail brand so it can be selected before any price is
  recorded there. Registration is idempotent and case-insensitive: a brand
  already known under another casing is left as is.

Usage Examples:
$ pw add-brand -name Lidl
`
}

func (c *addBrandCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Brand name (required)")
}

func (c *addBrandCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name flag is required.")
		return subcommands.ExitUsageError
	}

	l := loadLedger()
	l.RegisterBrand(c.name)
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Registered brand %q\n", c.name)
	return subcommands.ExitSuccess
}
