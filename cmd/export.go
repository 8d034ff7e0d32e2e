package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/pennywise"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the whole dataset as a portable snapshot" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Writes a complete, timestamped snapshot of the dataset: every product,
  every price observation and the brand registry. The snapshot can be merged
  into another dataset with the import command.
  - o: output file. Defaults to stdout.

Usage Examples:
$ pw export -o backup.json
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l := loadLedger()

	w := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot create %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := pennywise.EncodeSnapshot(w, l); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported %d products to %s\n", l.Products(), c.output)
	}
	return subcommands.ExitSuccess
}
