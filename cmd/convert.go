package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tasa"
	"github.com/etnz/tasa/date"
	"github.com/etnz/tasa/renderer"
	"github.com/google/subcommands"
)

type convertCmd struct {
	selector
	inverted bool
	on       string
	short    bool
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount with the active or a selected rate" }
func (*convertCmd) Usage() string {
	return `tasa convert [-i] [-id <id> | -s <label> | -on <date>] [-short] <amount>

  Converts an amount using the active rate, or a selected one.

  By default the amount is in the quote currency and is divided by the rate
  (e.g. VES to USD). With -i the conversion is inverted: the amount is in the
  base currency and is multiplied by the rate (e.g. USD to VES).

  -on selects the rate recorded on a given day, see 'tasa topic dates'.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	c.selector.SetFlags(f)
	f.BoolVar(&c.inverted, "i", false, "invert the conversion, from the base currency to the quote currency")
	f.StringVar(&c.on, "on", "", "use the rate recorded on that day")
	f.BoolVar(&c.short, "short", false, "print only the result, with two decimals")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one amount is required")
		return subcommands.ExitUsageError
	}
	amount, err := tasa.ParseAmount(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.on != "" && c.selected() {
		fmt.Fprintln(os.Stderr, "Error: -on cannot be used with -id or -s")
		return subcommands.ExitUsageError
	}
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

	record, err := c.record(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	result, err := tasa.Convert(amount, record.Rate, pair, c.inverted)
	if errors.Is(err, tasa.ErrNoRate) || errors.Is(err, tasa.ErrNegativeAmount) {
		fmt.Fprintf(os.Stderr, "Rate error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.short {
		fmt.Fprintln(stdout, result)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ConversionMarkdown(renderer.Conversion{
		Amount:   amount,
		Pair:     pair,
		Inverted: c.inverted,
		Rate:     record,
		Result:   result,
	}))
	return subcommands.ExitSuccess
}

// record returns the record whose rate is used: the selected one, or the active one.
//
// A missing active record is not an error, its zero rate is rejected by the conversion.
func (c *convertCmd) record(store *tasa.Store) (tasa.Record, error) {
	switch {
	case c.on != "":
		day, err := date.Parse(c.on)
		if err != nil {
			return tasa.Record{}, err
		}
		r, ok := store.On(day)
		if !ok {
			return tasa.Record{}, fmt.Errorf("no rate recorded on %s", day)
		}
		return r, nil

	case c.selected():
		id, err := c.resolve(store)
		if err != nil {
			return tasa.Record{}, err
		}
		r, ok := store.Find(id)
		if !ok {
			return tasa.Record{}, fmt.Errorf("no rate with ID %d", id)
		}
		return r, nil
	}

	r, _ := store.Active()
	return r, nil
}
