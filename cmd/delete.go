package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	selector
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a recorded rate" }
func (*deleteCmd) Usage() string {
	return `tasa delete (-id <id> | -s <label>)

  Deletes a recorded rate. Deleting the active rate makes the previous one
  active.
`
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.selected() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", errNoSelection)
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

	found, err := store.Delete(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving rates: %v\n", err)
		return subcommands.ExitFailure
	}
	if !found {
		fmt.Fprintf(os.Stderr, "No rate with ID %d, nothing deleted.\n", id)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "✅ Deleted rate %d\n", id)
	printActiveRate(store)
	return subcommands.ExitSuccess
}
