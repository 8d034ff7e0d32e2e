package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pennywise"
	"github.com/google/subcommands"
)

type selectBrandCmd struct {
	name  string
	clear bool
}

func (*selectBrandCmd) Name() string     { return "select-brand" }
func (*selectBrandCmd) Synopsis() string { return "set or show the selected brand" }
func (*selectBrandCmd) Usage() string {
	return `select-brand [-name <brand>] [-clear]

  The selected brand is a convenience filter: record, end-sale and list use
  it when no -brand is given. Without flags, prints the current selection.
  It is persisted next to the ledger file, independently of the dataset.

Usage Examples:
$ pw select-brand -name Lidl
$ pw select-brand -clear
`
}

func (c *selectBrandCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Brand to select")
	f.BoolVar(&c.clear, "clear", false, "Clear the selection")
}

func (c *selectBrandCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	switch {
	case c.clear:
		if err := pennywise.SaveSelectedBrand(*ledgerFile, ""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Selection cleared.")
	case c.name != "":
		// Selecting also registers the brand, so autocomplete-style brand
		// entry cannot leave the registry behind.
		l := loadLedger()
		l.RegisterBrand(c.name)
		if status := saveLedger(l); status != subcommands.ExitSuccess {
			return status
		}
		if err := pennywise.SaveSelectedBrand(*ledgerFile, c.name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Selected brand %q\n", c.name)
	default:
		if selected := pennywise.LoadSelectedBrand(*ledgerFile); selected != "" {
			fmt.Println(selected)
		} else {
			fmt.Println("No brand selected.")
		}
	}
	return subcommands.ExitSuccess
}
