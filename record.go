package tasa

import "github.com/etnz/tasa/date"

// Record is one persisted exchange rate.
//
// The json names are the ones of the historical data files and must not change.
type Record struct {
	ID        int            `json:"id"`
	Timestamp date.Timestamp `json:"fecha"`
	Rate      Rate           `json:"tasa"`
}

// Date returns the day the record was created.
func (r Record) Date() date.Date { return r.Timestamp.Date() }

// nextID returns the id following the highest id in records, 1 if there is none.
func nextID(records []Record) int {
	last := 0
	for _, r := range records {
		last = max(last, r.ID)
	}
	return last + 1
}
