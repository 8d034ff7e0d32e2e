package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type brandsCmd struct{}

func (*brandsCmd) Name() string     { return "brands" }
func (*brandsCmd) Synopsis() string { return "list registered retail brands" }
func (*brandsCmd) Usage() string {
	return `brands

  Lists every registered retail brand in lexicographic order. The selected
  brand, if any, is marked with a star.
`
}

func (*brandsCmd) SetFlags(f *flag.FlagSet) {}

func (c *brandsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l := loadLedger()
	selected := selectedBrand("")
	for b := range l.AllBrands() {
		if b == selected {
			fmt.Printf("%s *\n", b)
		} else {
			fmt.Println(b)
		}
	}
	return subcommands.ExitSuccess
}
