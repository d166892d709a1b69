package minimarket

import (
	"testing"
	"time"
)

func TestRangeContains(t *testing.T) {
	r := NewRange(NewDate(2025, time.August, 1), NewDate(2025, time.August, 7))

	if !r.Contains(NewDate(2025, time.August, 1)) || !r.Contains(NewDate(2025, time.August, 7)) {
		t.Error("boundaries are included")
	}
	if r.Contains(NewDate(2025, time.July, 31)) || r.Contains(NewDate(2025, time.August, 8)) {
		t.Error("dates outside the range must not match")
	}
	if !r.ContainsTime(time.Date(2025, time.August, 3, 18, 30, 0, 0, time.UTC)) {
		t.Error("an instant on a contained day must match")
	}
}

func TestNewRangeSwaps(t *testing.T) {
	r := NewRange(NewDate(2025, time.August, 7), NewDate(2025, time.August, 1))
	if r.From != NewDate(2025, time.August, 1) || r.To != NewDate(2025, time.August, 7) {
		t.Errorf("NewRange did not swap reversed boundaries: %+v", r)
	}
}

func TestRangeDays(t *testing.T) {
	r := NewRange(NewDate(2025, time.August, 1), NewDate(2025, time.August, 3))
	var days []Date
	for d := range r.Days() {
		days = append(days, d)
	}
	if len(days) != 3 || days[0] != r.From || days[2] != r.To {
		t.Errorf("Days() = %v", days)
	}
}

func TestRangeIdentifier(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{Daily.Range(NewDate(2025, time.August, 13)), "2025-08-13"},
		{Weekly.Range(NewDate(2025, time.August, 13)), "2025-W33"},
		{Monthly.Range(NewDate(2025, time.August, 13)), "2025-August"},
		{NewRange(NewDate(2025, time.August, 2), NewDate(2025, time.August, 5)), "2025-08-02_2025-08-05"},
	}
	for _, tt := range tests {
		if got := tt.r.Identifier(); got != tt.want {
			t.Errorf("Identifier(%+v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"daily", Daily, false},
		{"day", Daily, false},
		{"Weekly", Weekly, false},
		{" month ", Monthly, false},
		{"quarterly", Daily, true},
	}
	for _, tt := range tests {
		got, err := ParsePeriod(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePeriod(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPeriodRange(t *testing.T) {
	wednesday := NewDate(2025, time.August, 13)

	r := Weekly.Range(wednesday)
	if p, ok := r.Period(); !ok || p != Weekly {
		t.Errorf("Period() = %v, %v, want Weekly", p, ok)
	}
	r = Monthly.Range(wednesday)
	if r.From != NewDate(2025, time.August, 1) || r.To != NewDate(2025, time.August, 31) {
		t.Errorf("Monthly.Range = %+v", r)
	}
}
