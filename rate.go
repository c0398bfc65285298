package tasa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidRate is returned when a rate cannot be parsed as a number.
var ErrInvalidRate = errors.New("invalid rate")

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Rate is an exchange rate: units of the quote currency for one unit of the
// base currency.
type Rate struct {
	value decimal.Decimal
}

// R returns the Rate of value.
func R[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// ParseRate parses a user supplied rate. Both "36.5" and "36,5" are accepted.
// It does not check the sign, see IsPositive.
func ParseRate(s string) (Rate, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, fmt.Errorf("%w %q", ErrInvalidRate, s)
	}
	return Rate{value: v}, nil
}

func (r Rate) Decimal() decimal.Decimal { return r.value }
func (r Rate) Equal(p Rate) bool        { return r.value.Equal(p.value) }
func (r Rate) IsPositive() bool         { return r.value.IsPositive() }
func (r Rate) IsZero() bool             { return r.value.IsZero() }

// String returns the rate with all its digits.
func (r Rate) String() string { return r.value.String() }

// Fixed returns the rate rounded to two decimals, as displayed to users.
func (r Rate) Fixed() string { return r.value.StringFixed(2) }

// MarshalJSON writes the rate as a bare json number.
func (r Rate) MarshalJSON() ([]byte, error) {
	return []byte(r.value.String()), nil
}

// UnmarshalJSON accepts a json number, or a quoted number.
func (r *Rate) UnmarshalJSON(decimalBytes []byte) error {
	return r.value.UnmarshalJSON(decimalBytes)
}
