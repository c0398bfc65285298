package tasa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoRate is returned when there is no usable rate to convert with.
	ErrNoRate = errors.New("no rate available")
	// ErrNegativeAmount is returned when converting a negative amount.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrInvalidAmount is returned when an amount cannot be parsed as a number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrUnknownCurrency is returned for codes that are not ISO 4217 currencies.
	ErrUnknownCurrency = errors.New("unknown currency")
)

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("%w %q", ErrUnknownCurrency, code)
	}
	return nil
}

// Pair is the couple of currencies a Rate relates: a rate is the number of
// Quote units for one Base unit (e.g. VES per USD).
type Pair struct {
	Base  string
	Quote string
}

// NewPair returns a validated Pair, codes are upper cased.
func NewPair(base, quote string) (Pair, error) {
	p := Pair{Base: strings.ToUpper(base), Quote: strings.ToUpper(quote)}
	if err := ValidateCurrency(p.Base); err != nil {
		return Pair{}, err
	}
	if err := ValidateCurrency(p.Quote); err != nil {
		return Pair{}, err
	}
	return p, nil
}

// From returns the currency of the amount to convert.
// A direct conversion reads Quote, an inverted one reads Base.
func (p Pair) From(inverted bool) string {
	if inverted {
		return p.Base
	}
	return p.Quote
}

// To returns the currency of a conversion result.
func (p Pair) To(inverted bool) string {
	if inverted {
		return p.Quote
	}
	return p.Base
}

func (p Pair) String() string { return p.Quote + "/" + p.Base }

// Amount is a conversion result, displayed with two decimals.
type Amount struct {
	value decimal.Decimal
	cur   string
}

// A returns the Amount of value in currency.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Amount {
	return Amount{value: newDecimal(value), cur: currency}
}

// ParseAmount parses a user supplied amount. Both "100.5" and "100,5" are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w %q", ErrInvalidAmount, s)
	}
	return v, nil
}

func (a Amount) Currency() string         { return a.cur }
func (a Amount) Decimal() decimal.Decimal { return a.value }
func (a Amount) Equal(b Amount) bool      { return a.value.Equal(b.value) && a.cur == b.cur }

// String returns the amount rounded to two decimals, without currency: "2.74".
func (a Amount) String() string { return a.value.StringFixed(2) }

// Display returns the amount formatted for its currency, like "$2.74".
// Amounts with no known currency are displayed as String does.
func (a Amount) Display() string {
	cur := money.GetCurrency(a.cur)
	if cur == nil {
		return a.String()
	}
	minor := a.value.Round(2).Shift(int32(cur.Fraction)).IntPart()
	return cur.Formatter().Format(minor)
}

// Convert converts amount with rate.
//
// A direct conversion divides the amount, in pair.Quote, by the rate and
// returns pair.Base. An inverted one multiplies the amount, in pair.Base, and
// returns pair.Quote.
func Convert(amount decimal.Decimal, rate Rate, pair Pair, inverted bool) (Amount, error) {
	if !rate.IsPositive() {
		return Amount{}, ErrNoRate
	}
	if amount.IsNegative() {
		return Amount{}, fmt.Errorf("%w %s", ErrNegativeAmount, amount)
	}
	if inverted {
		return Amount{value: amount.Mul(rate.value), cur: pair.To(true)}, nil
	}
	return Amount{value: amount.Div(rate.value), cur: pair.To(false)}, nil
}
