package cli

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1500, "$1,500.00"},
		{16470.0949, "$16,470.09"},
		{1234567.891, "$1,234,567.89"},
		{-250.5, "-$250.50"},
		{0.005, "$0.01"},
		{math.MaxFloat64, "$1.80e+308"},
		{-2.5e15, "-$2.50e+15"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoneyShort(t *testing.T) {
	if got := FormatMoneyShort(16470.09); got != "$16,470" {
		t.Fatalf("FormatMoneyShort(16470.09) = %q, want $16,470", got)
	}
	if got := FormatMoneyShort(999.5); got != "$999.50" {
		t.Fatalf("FormatMoneyShort(999.5) = %q, want $999.50", got)
	}
	if got := FormatMoneyShort(math.MaxFloat64); got != "$1.80e+308" {
		t.Fatalf("FormatMoneyShort(max) = %q, want $1.80e+308", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	cases := map[int]string{
		0:  "paid off",
		10: "10 mo",
		12: "1y",
		27: "2y 3mo",
	}
	for in, want := range cases {
		if got := FormatMonths(in); got != want {
			t.Errorf("FormatMonths(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatMonthYear(t *testing.T) {
	if got := FormatMonthYear(time.Date(2027, time.August, 3, 0, 0, 0, 0, time.UTC)); got != "Aug 2027" {
		t.Fatalf("FormatMonthYear = %q, want Aug 2027", got)
	}
	if got := FormatMonthYear(time.Time{}); got != "" {
		t.Fatalf("FormatMonthYear(zero) = %q, want empty", got)
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1500", 1500, true},
		{" $1,250.50 ", 1250.5, true},
		{"0", 0, true},
		{"1_000", 1000, true},
		{"-5", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.want {
				t.Fatalf("ParseAmount(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
			}
		} else if err == nil {
			t.Fatalf("ParseAmount(%q) expected error", tc.in)
		}
	}

	if v, err := ParseOptionalAmount("  "); err != nil || v != 0 {
		t.Fatalf("ParseOptionalAmount(blank) = %v, %v", v, err)
	}
}

func TestShortError(t *testing.T) {
	err := fmt.Errorf("%w: payment insufficient to amortize debt (first month interest 240.00)", errors.New("invalid input"))
	if got := shortError(err); got != "payment insufficient to amortize debt" {
		t.Fatalf("shortError = %q", got)
	}
}
