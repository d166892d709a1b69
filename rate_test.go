package minimarket

import (
	"math"
	"testing"
)

func TestNewRate(t *testing.T) {
	testCases := []struct {
		name    string
		in      float64
		wantErr bool
	}{
		{"typical", 36.5, false},
		{"one", 1, false},
		{"tiny", 0.0001, false},
		{"zero", 0, true},
		{"negative", -36.5, true},
		{"nan", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
		{"negative infinity", math.Inf(-1), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRate(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewRate(%v) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
		})
	}
}

func TestParseRate(t *testing.T) {
	r, err := ParseRate("36.5")
	if err != nil {
		t.Fatalf("ParseRate(36.5) failed: %v", err)
	}
	if !r.Equal(MustRate(36.5)) {
		t.Errorf("ParseRate(36.5) = %s", r)
	}
	for _, bad := range []string{"", "abc", "0", "-1"} {
		if _, err := ParseRate(bad); err == nil {
			t.Errorf("ParseRate(%q) should fail", bad)
		}
	}
}

func TestDefaultRate(t *testing.T) {
	if DefaultRate.IsZero() {
		t.Error("the default rate must be usable as-is")
	}
	if !DefaultRate.Equal(MustRate(36.5)) {
		t.Errorf("DefaultRate = %s, want 36.5", DefaultRate)
	}
}

func TestRateUnmarshalRejectsNonPositive(t *testing.T) {
	var r Rate
	if err := r.UnmarshalJSON([]byte("36.5")); err != nil {
		t.Fatalf("valid rate rejected: %v", err)
	}
	for _, bad := range []string{"0", "-2"} {
		var r Rate
		if err := r.UnmarshalJSON([]byte(bad)); err == nil {
			t.Errorf("UnmarshalJSON(%s) should fail", bad)
		}
	}
}
