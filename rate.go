package minimarket

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidRate is returned when a rate is not a finite positive number.
// Validation happens where the rate is set, never at conversion time, so a
// conversion can never feed NaN or infinity into persisted totals.
var ErrInvalidRate = errors.New("exchange rate must be a finite positive number")

// Rate is the BsF-per-USD exchange rate. The zero value is invalid; build
// one with NewRate. There is exactly one live rate per store, mutable at
// any time, and each committed sale keeps its own frozen copy.
type Rate struct {
	value decimal.Decimal
}

// DefaultRate is the fallback rate of a brand new store.
var DefaultRate = Rate{value: decimal.NewFromFloat(36.5)}

// NewRate builds a validated rate from a BsF-per-USD factor.
func NewRate(bsfPerUSD float64) (Rate, error) {
	if math.IsNaN(bsfPerUSD) || math.IsInf(bsfPerUSD, 0) || bsfPerUSD <= 0 {
		return Rate{}, fmt.Errorf("%w: got %v", ErrInvalidRate, bsfPerUSD)
	}
	return Rate{value: decimal.NewFromFloat(bsfPerUSD)}, nil
}

// ParseRate parses and validates a rate from its decimal representation.
func ParseRate(s string) (Rate, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, fmt.Errorf("%w: %q", ErrInvalidRate, s)
	}
	if !d.IsPositive() {
		return Rate{}, fmt.Errorf("%w: got %s", ErrInvalidRate, d)
	}
	return Rate{value: d}, nil
}

// MustRate is a test and literal helper that panics on an invalid rate.
func MustRate(bsfPerUSD float64) Rate {
	r, err := NewRate(bsfPerUSD)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rate) IsZero() bool         { return r.value.IsZero() }
func (r Rate) Equal(o Rate) bool    { return r.value.Equal(o.value) }
func (r Rate) String() string       { return r.value.String() }
func (r Rate) AsFloat() float64     { return r.value.InexactFloat64() }

func (r Rate) MarshalJSON() ([]byte, error) {
	return r.value.MarshalJSON()
}

func (r *Rate) UnmarshalJSON(data []byte) error {
	if err := r.value.UnmarshalJSON(data); err != nil {
		return err
	}
	if !r.value.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidRate, r.value)
	}
	return nil
}
