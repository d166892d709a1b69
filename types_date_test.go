package minimarket

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		// ISO format, permissive on digits
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"2025-13-45", Date{}, true},

		// relative offsets from today
		{"0d", today, false},
		{"", today, false},
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"-2w", today.Add(-14), false},
		{"+1m", NewDate(today.Year(), today.Month()+1, today.Day()), false},
		{"1d", Date{}, true}, // a sign is required
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateNormalization(t *testing.T) {
	// day overflow rolls into the next month
	if got, want := NewDate(2025, time.January, 32), NewDate(2025, time.February, 1); got != want {
		t.Errorf("NewDate(2025, 1, 32) = %v, want %v", got, want)
	}
	// day 0 is the last day of the previous month
	if got, want := NewDate(2025, time.March, 0), NewDate(2025, time.February, 28); got != want {
		t.Errorf("NewDate(2025, 3, 0) = %v, want %v", got, want)
	}
}

func TestDateStartEndOf(t *testing.T) {
	wednesday := NewDate(2025, time.August, 13)

	if got := wednesday.StartOf(Weekly); got != NewDate(2025, time.August, 11) {
		t.Errorf("StartOf(Weekly) = %v, want the Monday", got)
	}
	if got := wednesday.EndOf(Weekly); got != NewDate(2025, time.August, 17) {
		t.Errorf("EndOf(Weekly) = %v, want the Sunday", got)
	}
	if got := wednesday.StartOf(Monthly); got != NewDate(2025, time.August, 1) {
		t.Errorf("StartOf(Monthly) = %v", got)
	}
	if got := wednesday.EndOf(Monthly); got != NewDate(2025, time.August, 31) {
		t.Errorf("EndOf(Monthly) = %v", got)
	}
	if got := wednesday.StartOf(Daily); got != wednesday {
		t.Errorf("StartOf(Daily) = %v", got)
	}
}

func TestDateOf(t *testing.T) {
	at := time.Date(2025, time.August, 1, 23, 59, 0, 0, time.UTC)
	if got := DateOf(at); got != NewDate(2025, time.August, 1) {
		t.Errorf("DateOf(%v) = %v", at, got)
	}
}
