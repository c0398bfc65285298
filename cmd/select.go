package cmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/tasa"
	"github.com/etnz/tasa/renderer"
)

// errNoSelection is returned when neither -id nor -s is set.
var errNoSelection = errors.New("a rate must be selected with -id or -s")

// selector holds the flags used to select a rate record.
type selector struct {
	id    int
	label string
}

func (s *selector) SetFlags(f *flag.FlagSet) {
	f.IntVar(&s.id, "id", 0, "ID of the rate")
	f.StringVar(&s.label, "s", "", "Rate label, as printed by 'list -labels'")
}

// selected reports whether a selection was attempted.
func (s *selector) selected() bool { return s.id != 0 || s.label != "" }

// resolve returns the selected record id.
//
// Labels are resolved against a lookup table freshly built from the store.
func (s *selector) resolve(store *tasa.Store) (int, error) {
	if s.id != 0 && s.label != "" {
		return 0, errors.New("-id and -s are mutually exclusive")
	}
	if s.label != "" {
		opt, ok := renderer.NewOptions(store.ListAll()).Lookup(s.label)
		if !ok {
			return 0, fmt.Errorf("no rate labelled %q", s.label)
		}
		return opt.ID, nil
	}
	if s.id <= 0 {
		return 0, errNoSelection
	}
	return s.id, nil
}

// parsePositiveRate parses a rate given on the command line.
func parsePositiveRate(s string) (tasa.Rate, error) {
	if s == "" {
		return tasa.Rate{}, errors.New("a rate is required, use -r")
	}
	rate, err := tasa.ParseRate(s)
	if err != nil {
		return tasa.Rate{}, err
	}
	if !rate.IsPositive() {
		return tasa.Rate{}, fmt.Errorf("rate must be positive, got %s", rate)
	}
	return rate, nil
}
