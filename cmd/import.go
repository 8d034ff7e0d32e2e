package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pennywise"
	"github.com/google/subcommands"
)

type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge a snapshot into the dataset" }
func (*importCmd) Usage() string {
	return `import -i <file>

  Merges a snapshot produced by export into the current dataset. The merge
  only adds information: unknown products and brands are inserted, known
  ones gain the price observations they were missing. Importing the same
  snapshot twice changes nothing the second time. A malformed snapshot is
  rejected whole, before anything is applied.

Usage Examples:
$ pw import -i backup.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Snapshot file to import (required)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i flag is required.")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	snap, err := pennywise.DecodeSnapshot(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	l := loadLedger()
	sum := l.Merge(snap)
	if status := saveLedger(l); status != subcommands.ExitSuccess {
		return status
	}

	fmt.Printf("Imported: %d products added, %d products updated, %d brands added\n",
		sum.ProductsAdded, sum.ProductsUpdated, sum.BrandsAdded)
	return subcommands.ExitSuccess
}
