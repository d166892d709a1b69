package minimarket

import (
	"testing"
)

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		name  string
		money Money
		want  string
	}{
		{"usd", USDm(14), "$14.00"},
		{"usd cents", USDm(2.5), "$2.50"},
		{"bsf", BSFm(511), "511.00 Bs."},
		{"bsf rounding", BSFm(36.555), "36.56 Bs."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.money.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoneyIn(t *testing.T) {
	rate := MustRate(36.5)

	testCases := []struct {
		name   string
		money  Money
		target Currency
		want   Money
	}{
		{"usd to bsf", USDm(2), BsF, BSFm(73)},
		{"bsf to usd", BSFm(73), USD, USDm(2)},
		{"usd identity", USDm(2), USD, USDm(2)},
		{"bsf identity", BSFm(73), BsF, BSFm(73)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.money.In(tc.target, rate); !got.Equal(tc.want) {
				t.Errorf("In(%s) = %s, want %s", tc.target, got, tc.want)
			}
		})
	}
}

func TestMoneyDual(t *testing.T) {
	usd, bsf := USDm(2).Dual(MustRate(36.5))
	if !usd.Equal(USDm(2)) || !bsf.Equal(BSFm(73)) {
		t.Errorf("Dual = %s / %s, want $2.00 / 73.00 Bs.", usd, bsf)
	}
}

// Round-tripping a conversion at the same rate must land back on the
// same cent: division carries a bounded rounding error far below 0.01.
func TestMoneyInRoundTrip(t *testing.T) {
	rates := []Rate{MustRate(36.5), MustRate(1), MustRate(0.5), MustRate(3650.25)}
	amounts := []Money{USDm(2), USDm(14), USDm(0.01), USDm(123.45)}
	for _, r := range rates {
		for _, m := range amounts {
			back := m.In(BsF, r).In(USD, r)
			if !back.Amount().Round(2).Equal(m.Amount().Round(2)) {
				t.Errorf("%s -> BsF -> USD at %s = %s, want %s", m, r, back, m)
			}
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	sum := USDm(2).Add(USDm(1.5))
	if !sum.Equal(USDm(3.5)) {
		t.Errorf("2 + 1.5 = %s, want $3.50", sum)
	}
	total := USDm(2).Mul(Q(7))
	if !total.Equal(USDm(14)) {
		t.Errorf("2 x 7 = %s, want $14.00", total)
	}
	if got := USDm(2).Sub(USDm(3)); !got.IsNegative() {
		t.Errorf("2 - 3 = %s, want a negative value", got)
	}
}

func TestMoneyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD and BsF should panic")
		}
	}()
	USDm(1).Add(BSFm(1))
}

func TestParseCurrency(t *testing.T) {
	testCases := []struct {
		in      string
		want    Currency
		wantErr bool
	}{
		{"usd", USD, false},
		{"USD", USD, false},
		{"$", USD, false},
		{"bsf", BsF, false},
		{"Bs.", BsF, false},
		{"eur", "", true},
	}
	for _, tc := range testCases {
		got, err := ParseCurrency(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseCurrency(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCurrency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
