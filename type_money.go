package minimarket

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is one of the two currencies the store operates in.
type Currency string

const (
	// USD is the stable foreign currency.
	USD Currency = "USD"
	// BsF is the local currency, priced in BsF per USD by the exchange rate.
	BsF Currency = "BsF"
)

func init() {
	// go-money does not know the bolívar under this code; register it so
	// formatting works like the other currencies.
	money.AddCurrency(string(BsF), "Bs.", "1 $", ",", ".", 2)
}

// ParseCurrency parses a currency from its code, case-insensitively.
func ParseCurrency(s string) (Currency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "usd", "$":
		return USD, nil
	case "bsf", "bs", "bs.":
		return BsF, nil
	default:
		return "", fmt.Errorf("unknown currency %q", s)
	}
}

// Other returns the opposite currency.
func (c Currency) Other() Currency {
	if c == USD {
		return BsF
	}
	return USD
}

// Money represents a monetary value in one of the two store currencies.
type Money struct {
	value      decimal.Decimal // as major unit value
	cur        Currency
	fractional bool // true to persist in full digits
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency Currency) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the full go-money currency for formatting.
func (m Money) currency() money.Currency {
	// the Money constructor is the only way to get a never-nil currency.
	return *money.New(0, string(m.cur)).Currency()
}

// String returns the formatted representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() Currency      { return m.cur }
func (m Money) Equal(n Money) bool      { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) IsPositive() bool        { return m.value.IsPositive() }
func (m Money) IsNegative() bool        { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool   { return m.value.LessThan(n.value) }
func (m Money) Mul(q Quantity) Money    { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Amount() decimal.Decimal { return m.value }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) Currency {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// In converts the money value into the target currency at the given rate.
// Converting to its own currency is the identity. USD to BsF multiplies by
// the rate, BsF to USD divides. No rounding is applied here: rounding is a
// presentation concern.
func (m Money) In(target Currency, r Rate) Money {
	if m.cur == target || m.cur == "" {
		return Money{value: m.value, cur: target}
	}
	if target == BsF {
		return Money{value: m.value.Mul(r.value), cur: BsF}
	}
	return Money{value: m.value.Div(r.value), cur: USD}
}

// Dual returns the value in both currencies at the given rate, the pair
// every price tag in the store shows.
func (m Money) Dual(r Rate) (usd, bsf Money) {
	return m.In(USD, r), m.In(BsF, r)
}

// AsFloat returns the amount as a float64, for display summaries only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// exact returns a copy of the money that will be persisted with all its
// digits. Frozen sale amounts use it: reloading the file must reproduce
// the exact same sums, so they cannot lose digits to display rounding.
func (m Money) exact() Money {
	m.fractional = true
	return m
}

func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	rounded := m.value
	if !m.fractional {
		rounded = m.value.Round(int32(m.currency().Fraction))
	}
	w.Append("amount", rounded)
	return w.MarshalJSON()
}
