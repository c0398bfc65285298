package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type addCmd struct {
	rate string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new rate, it becomes the active rate" }
func (*addCmd) Usage() string {
	return `tasa add -r <rate>

  Records a new rate, stamped with the current time. The new rate becomes the
  active rate. Both '36.5' and '36,5' are accepted.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rate, "r", "", "The rate, a positive number (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	r, err := store.Create(rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving rate: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "✅ Added rate %d: %s\n", r.ID, r.Rate.Fixed())
	printActiveRate(store)
	return subcommands.ExitSuccess
}
