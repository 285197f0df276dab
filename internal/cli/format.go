// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// hugeAmount is where money switches to scientific notation; beyond it the
// whole part no longer fits an int64.
const hugeAmount = 1e15

func formatHuge(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2e", -amount)
	}
	return fmt.Sprintf("$%.2e", amount)
}

// FormatMoney renders an amount with two fixed decimals and thousands
// separators, e.g. 16470.0949 -> "$16,470.09".
func FormatMoney(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "n/a"
	}
	if math.Abs(amount) >= hugeAmount {
		return formatHuge(amount)
	}
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return sign + "$" + fixed
	}
	return sign + "$" + FormatNumber(n) + "." + frac
}

// FormatMoneyShort drops the cents for large amounts used in cards.
func FormatMoneyShort(amount float64) string {
	if math.Abs(amount) >= 10_000 && math.Abs(amount) < hugeAmount {
		return "$" + FormatNumber(decimal.NewFromFloat(amount).Round(0).IntPart())
	}
	return FormatMoney(amount)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRate formats an annual percentage rate that is already in percent.
func FormatRate(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// FormatMonths renders a month count as years and months.
// e.g., 10 -> "10 mo", 27 -> "2y 3mo"
func FormatMonths(months int) string {
	if months <= 0 {
		return "paid off"
	}
	years := months / 12
	rest := months % 12
	switch {
	case years == 0:
		return fmt.Sprintf("%d mo", months)
	case rest == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy %dmo", years, rest)
	}
}

// FormatMonthYear formats a payoff date.
func FormatMonthYear(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2006")
}

// ParseAmount parses a user-entered amount such as "1,250.50" or "$300".
// Negative, empty, NaN and infinite values are rejected.
func ParseAmount(s string) (float64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, "_", "")
	if clean == "" {
		return 0, fmt.Errorf("amount is required")
	}

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return v, nil
}

// ParseOptionalAmount treats an empty string as zero.
func ParseOptionalAmount(s string) (float64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	return ParseAmount(s)
}
