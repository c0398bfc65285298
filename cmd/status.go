package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tasa/renderer"
	"github.com/google/subcommands"
)

type statusCmd struct {
	short bool
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "display the active rate" }
func (*statusCmd) Usage() string {
	return `tasa status [-short]

  Displays the active rate: the last rate added, whatever its date.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.short, "short", false, "print only the rate, with two decimals")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pair, err := currencyPair()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rates: %v\n", err)
		return subcommands.ExitFailure
	}

	rate, ok := store.ActiveRate()
	if c.short {
		fmt.Fprintln(stdout, renderer.ActiveRate(rate, ok))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.StatusMarkdown(rate, ok, pair))
	return subcommands.ExitSuccess
}
