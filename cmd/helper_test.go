package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/tasa"
	"github.com/google/subcommands"
)

// setupTest points the application to a fresh rates file and captures stdout.
func setupTest(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()
	t.Setenv(EnvTestingNow, "2025-10-15 09:30:00")

	oldFile, oldBase, oldQuote, oldPlain, oldStdout := rateFile, baseCurrency, quoteCurrency, plainOutput, stdout
	t.Cleanup(func() {
		rateFile, baseCurrency, quoteCurrency, plainOutput, stdout = oldFile, oldBase, oldQuote, oldPlain, oldStdout
	})

	var out bytes.Buffer
	rateFile = filepath.Join(t.TempDir(), "tasa_data.json")
	baseCurrency, quoteCurrency = "USD", "EUR"
	plainOutput = true
	stdout = &out
	return &out, rateFile
}

// execute runs c with args, as the commander would.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: cannot parse %q: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}

// writeRates writes content in the rates file.
func writeRates(t *testing.T, file, content string) {
	t.Helper()
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// readRates returns all records of the rates file.
func readRates(file string) []tasa.Record {
	return tasa.NewStore(file).ListAll()
}

const threeRates = `[
    {"id": 3, "fecha": "2025-10-14 18:00:00", "tasa": 36.5},
    {"id": 2, "fecha": "2025-10-13 18:00:00", "tasa": 36.2},
    {"id": 1, "fecha": "2025-10-01 08:00:00", "tasa": 1}
]`
