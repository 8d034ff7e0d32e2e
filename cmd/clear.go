package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pennywise"
	"github.com/google/subcommands"
)

type clearCmd struct {
	force bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "wipe the whole dataset" }
func (*clearCmd) Usage() string {
	return `clear -f

  Deletes every product, every price observation, the brand registry and
  the selected brand. Export a snapshot first if in doubt.

Usage Examples:
$ pw clear -f
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Confirm wiping the dataset")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: this wipes the whole dataset, use -f to confirm.")
		return subcommands.ExitUsageError
	}

	l := loadLedger()
	l.Clear()
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}
	if err := pennywise.SaveSelectedBrand(*ledgerFile, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Dataset cleared.")
	return subcommands.ExitSuccess
}
