// Package cmd implements the CLI application to manage daily exchange rates.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tasa"
	"github.com/etnz/tasa/date"
	"github.com/etnz/tasa/renderer"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Environment variables holding the global flags default values. They are
// also passed to extensions.
const (
	EnvFile       = "TASA_FILE"
	EnvBase       = "TASA_BASE"
	EnvQuote      = "TASA_QUOTE"
	EnvVerbose    = "TASA_VERBOSE"
	EnvTestingNow = "TASA_TESTING_NOW" // freezes the clock, for documentation tests
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&statusCmd{}, "rates")
	c.Register(&listCmd{}, "rates")
	c.Register(&addCmd{}, "rates")
	c.Register(&modifyCmd{}, "rates")
	c.Register(&deleteCmd{}, "rates")

	c.Register(&convertCmd{}, "conversion")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	rateFile      = "tasa_data.json"
	baseCurrency  = "USD"
	quoteCurrency = "VES"
	plainOutput   = false

	// Verbose enables debug logs.
	Verbose = false

	stdout io.Writer = os.Stdout
)

// RegisterFlags registers the global flags on fs.
//
// Defaults are read from the environment, after loading the optional .env
// file of the current folder. Variables already set in the environment win
// over the .env file.
func RegisterFlags(fs *flag.FlagSet) {
	_ = godotenv.Load()

	fs.StringVar(&rateFile, "file", getenv(EnvFile, rateFile), "Path to the rates file (JSON format)")
	fs.StringVar(&baseCurrency, "base", getenv(EnvBase, baseCurrency), "Reference currency, a rate is the quote amount for one unit of it")
	fs.StringVar(&quoteCurrency, "quote", getenv(EnvQuote, quoteCurrency), "Local currency, in which rates are expressed")
	fs.BoolVar(&Verbose, "v", getenvBool(EnvVerbose, Verbose), "Verbose logging")
	fs.BoolVar(&plainOutput, "plain", plainOutput, "Print raw markdown instead of rendering it for the terminal")
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return b
}

// openStore opens the application rates file, seeding it with a default rate
// if it is empty.
func openStore() (*tasa.Store, error) {
	opts := []tasa.Option{tasa.WithLogger(logger.Named("store"))}
	if now := os.Getenv(EnvTestingNow); now != "" {
		ts, err := date.ParseTimestamp(now)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvTestingNow, err)
		}
		opts = append(opts, tasa.WithClock(func() time.Time { return ts.Time() }))
	}

	store := tasa.NewStore(rateFile, opts...)
	if err := store.EnsureInitialized(); err != nil {
		return nil, fmt.Errorf("cannot initialize %q: %w", rateFile, err)
	}
	return store, nil
}

// currencyPair returns the pair defined by the global flags.
func currencyPair() (tasa.Pair, error) {
	return tasa.NewPair(baseCurrency, quoteCurrency)
}

// printMarkdown prints a markdown document, rendered for the terminal unless
// -plain is set.
func printMarkdown(doc string) {
	if plainOutput {
		fmt.Fprintln(stdout, doc)
		return
	}
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		logger.Debug("cannot render markdown, printing it raw")
		fmt.Fprintln(stdout, doc)
		return
	}
	fmt.Fprint(stdout, out)
}

// printActiveRate prints the active rate, after a change.
func printActiveRate(store *tasa.Store) {
	rate, ok := store.ActiveRate()
	pair, err := currencyPair()
	if err != nil {
		fmt.Fprintf(stdout, "Active rate: %s\n", renderer.ActiveRate(rate, ok))
		return
	}
	fmt.Fprintf(stdout, "Active rate: %s %s\n", renderer.ActiveRate(rate, ok), pair)
}
