// Package cmd implements the CLI application to manage a grocery price ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pennywise"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&recordCmd{},
	&listCmd{},
	&showCmd{},
	&historyCmd{},
	&nameCmd{},
	&endSaleCmd{},
	&deleteCmd{},
	&addBrandCmd{},
	&brandsCmd{},
	&selectBrandCmd{},
	&exportCmd{},
	&importCmd{},
	&inspectCmd{},
	&clearCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "pennywise.json", "Path to the ledger file (JSON snapshot format)")

// loadLedger reads the application ledger, an empty one when none exists yet.
func loadLedger() *pennywise.Ledger {
	return pennywise.LoadLedger(*ledgerFile)
}

// saveLedger persists the application ledger. On failure nothing was
// overwritten: the on-disk state is the one before the command ran.
func saveLedger(l *pennywise.Ledger) subcommands.ExitStatus {
	if err := pennywise.SaveLedger(*ledgerFile, l); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// selectedBrand returns the brand to use: the explicit one if given,
// otherwise the persisted selected brand.
func selectedBrand(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return pennywise.LoadSelectedBrand(*ledgerFile)
}
