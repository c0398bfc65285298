package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tasa/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	labels bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all recorded rates, newest first" }
func (*listCmd) Usage() string {
	return `tasa list [-labels]

  Lists all recorded rates, newest first. The first one is the active rate.

  With -labels, prints one label per line. Labels can be used to select a
  rate in 'modify', 'delete' and 'convert' with -s.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.labels, "labels", false, "print selection labels, one per line")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	records := store.ListAll()
	if c.labels {
		for _, label := range renderer.NewOptions(records).Labels() {
			fmt.Fprintln(stdout, label)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ListMarkdown(records, pair))
	return subcommands.ExitSuccess
}
