package renderer

import (
	"fmt"

	"github.com/etnz/tasa"
)

// Option is one selectable rate, as shown to the user.
type Option struct {
	Label string
	ID    int
	Rate  tasa.Rate
}

// Options maps display labels back to the records they were built from.
//
// It is built from a fresh ListAll on every refresh and must not outlive it:
// labels embed the rate value, so they change when a record is modified.
type Options struct {
	list    []Option
	byLabel map[string]Option
}

// Label returns the display label of a record, like "ID: 2 | 2025-10-15 | Tasa: 36.50".
func Label(r tasa.Record) string {
	return fmt.Sprintf("ID: %d | %s | Tasa: %s", r.ID, r.Date(), r.Rate.Fixed())
}

// NewOptions returns the options for records, in the same order.
func NewOptions(records []tasa.Record) *Options {
	o := &Options{
		list:    make([]Option, 0, len(records)),
		byLabel: make(map[string]Option, len(records)),
	}
	for _, r := range records {
		opt := Option{Label: Label(r), ID: r.ID, Rate: r.Rate}
		o.list = append(o.list, opt)
		o.byLabel[opt.Label] = opt
	}
	return o
}

// Labels returns all labels, in store order.
func (o *Options) Labels() []string {
	labels := make([]string, len(o.list))
	for i, opt := range o.list {
		labels[i] = opt.Label
	}
	return labels
}

// Lookup returns the option displayed as label.
func (o *Options) Lookup(label string) (Option, bool) {
	opt, ok := o.byLabel[label]
	return opt, ok
}

// Len returns the number of options.
func (o *Options) Len() int { return len(o.list) }
