package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"5", "$5.00"},
		{"1234.56", "$1,234.56"},
		{"1234567.891", "$1,234,567.89"},
		{"0.005", "$0.01"},
		{"-20", "-$20.00"},
		{"-1500.5", "-$1,500.50"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Currency(decimal.RequireFromString(tt.in))
			if got != tt.want {
				t.Fatalf("Currency(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name         string
		value, total string
		want         string
	}{
		{"zero total", "50", "0", "0%"},
		{"whole", "25", "100", "25%"},
		{"rounds down", "1", "3", "33%"},
		{"rounds half up", "1", "8", "13%"},
		{"above hundred", "125", "100", "125%"},
		{"negative half toward zero", "-1", "200", "0%"},
		{"negative", "-20", "80", "-25%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(decimal.RequireFromString(tt.value), decimal.RequireFromString(tt.total))
			if got != tt.want {
				t.Fatalf("Percentage(%s, %s) = %q, want %q", tt.value, tt.total, got, tt.want)
			}
		})
	}
}

func TestDates(t *testing.T) {
	d := time.Date(2026, time.October, 3, 15, 4, 5, 0, time.UTC)

	if got := Date(d); got != "Oct 3, 2026" {
		t.Errorf("Date = %q", got)
	}
	if got := CompactDate(d); got != "Oct 3" {
		t.Errorf("CompactDate = %q", got)
	}
	if got := MonthKey(d); got != "2026-10" {
		t.Errorf("MonthKey = %q", got)
	}
	if got := MonthKey(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)); got != "2026-03" {
		t.Errorf("MonthKey must zero-pad, got %q", got)
	}
	if got := MonthLabel(d); got != "Oct 2026" {
		t.Errorf("MonthLabel = %q", got)
	}

	m := CurrentMonth(d)
	if m.Month != "October" || m.Year != 2026 {
		t.Errorf("CurrentMonth = %+v", m)
	}
	if m.String() != "October 2026" {
		t.Errorf("Month.String = %q", m.String())
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"income":     "Income",
		"high":       "High",
		"dining out": "Dining Out",
		"":           "",
	}
	for in, want := range tests {
		if got := Title(in); got != want {
			t.Errorf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}
