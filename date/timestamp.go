package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampFormat is the layout of a Timestamp, in local time and without zone.
const TimestampFormat = "2006-01-02 15:04:05"

// Timestamp is an instant with second granularity, as recorded in rate files.
type Timestamp struct {
	t time.Time
}

// NewTimestamp truncates t to the second.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{t.Truncate(time.Second)} }

// ParseTimestamp parses a Timestamp in TimestampFormat, in the local time zone.
func ParseTimestamp(str string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampFormat, str, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q want format %q: %w", str, TimestampFormat, err)
	}
	return Timestamp{t}, nil
}

// Date returns the day of the timestamp.
func (ts Timestamp) Date() Date { return New(ts.t.Date()) }

// Time returns the timestamp as a time.Time.
func (ts Timestamp) Time() time.Time { return ts.t }

// Clock returns the time of day part, "15:04:05".
func (ts Timestamp) Clock() string { return ts.t.Format(time.TimeOnly) }

// IsZero reports whether ts is the zero Timestamp.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Equal reports whether ts and x are the same instant.
func (ts Timestamp) Equal(x Timestamp) bool { return ts.t.Equal(x.t) }

func (ts Timestamp) String() string { return ts.t.Format(TimestampFormat) }

func (ts *Timestamp) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	t, err := ParseTimestamp(str)
	if err != nil {
		return err
	}
	*ts = t
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	str := ts.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Timestamp)(nil)
var _ json.Unmarshaler = (*Timestamp)(nil)
