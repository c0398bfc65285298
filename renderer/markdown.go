// Package renderer turns rates and conversions into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tasa"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// NotAvailable is displayed in place of a missing rate.
const NotAvailable = "N/A"

// ActiveRate formats an optional active rate with two decimals.
func ActiveRate(rate tasa.Rate, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return rate.Fixed()
}

// StatusMarkdown renders the active rate headline.
func StatusMarkdown(rate tasa.Rate, ok bool, pair tasa.Pair) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Active Rate")
	doc.PlainText(fmt.Sprintf("%s %s", md.Bold(ActiveRate(rate, ok)), pair))
	return doc.String()
}

// ListMarkdown renders all records, in the given order.
func ListMarkdown(records []tasa.Record, pair tasa.Pair) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Rates")
	if len(records) == 0 {
		doc.PlainText("No rate recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"ID", "Date", "Time", pair.String()},
	}
	for i, r := range records {
		id := fmt.Sprint(r.ID)
		if i == 0 {
			id = md.Bold(id)
		}
		table.Rows = append(table.Rows, []string{id, r.Date().String(), r.Timestamp.Clock(), r.Rate.Fixed()})
	}
	doc.Table(table)
	return doc.String()
}

// Conversion describes a conversion to render.
type Conversion struct {
	Amount   decimal.Decimal
	Pair     tasa.Pair
	Inverted bool
	Rate     tasa.Record // the record whose rate was used
	Result   tasa.Amount
}

// ConversionMarkdown renders a conversion: the amount, the rate used and the result.
func ConversionMarkdown(c Conversion) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Conversion")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Amount " + c.Pair.To(c.Inverted)), md.Bold(c.Result.String())},
		Rows: [][]string{
			{"Amount " + c.Pair.From(c.Inverted), c.Amount.StringFixed(2)},
			{"Rate", fmt.Sprintf("%s (ID: %d, %s)", c.Rate.Rate.Fixed(), c.Rate.ID, c.Rate.Date())},
		},
	})
	return doc.String()
}
