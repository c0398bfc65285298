package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type modifyCmd struct {
	selector
	rate string
}

func (*modifyCmd) Name() string     { return "modify" }
func (*modifyCmd) Synopsis() string { return "change the value of a recorded rate" }
func (*modifyCmd) Usage() string {
	return `tasa modify (-id <id> | -s <label>) -r <rate>

  Changes the value of a recorded rate. The rate keeps its date and its
  position: modifying an older rate does not make it active.
`
}

func (c *modifyCmd) SetFlags(f *flag.FlagSet) {
	c.selector.SetFlags(f)
	f.StringVar(&c.rate, "r", "", "The new rate, a positive number (required)")
}

func (c *modifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.selected() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", errNoSelection)
		return subcommands.ExitUsageError
	}
	rate, err := parsePositiveRate(c.rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rates: %v\n", err)
		return subcommands.ExitFailure
	}

	id, err := c.resolve(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	found, err := store.Modify(id, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving rate: %v\n", err)
		return subcommands.ExitFailure
	}
	if !found {
		fmt.Fprintf(os.Stderr, "No rate with ID %d, nothing modified.\n", id)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "✅ Modified rate %d: %s\n", id, rate.Fixed())
	printActiveRate(store)
	return subcommands.ExitSuccess
}
