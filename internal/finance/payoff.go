package finance

import (
	"fmt"
	"math"
	"time"
)

// monthEpsilon absorbs float error so an exact 10-month payoff is not
// reported as 9.
const monthEpsilon = 1e-9

// PayoffResult describes when an amortizing debt reaches zero.
type PayoffResult struct {
	Months        int
	ExactMonths   float64
	Date          time.Time
	TotalInterest float64
}

// ExactMonthsToPayoff returns the fractional number of monthly payments
// needed to retire principal.
func ExactMonthsToPayoff(principal, annualRatePct, monthlyPayment float64) (float64, error) {
	switch {
	case monthlyPayment <= 0 || math.IsNaN(monthlyPayment):
		return 0, fmt.Errorf("%w: monthly payment must be positive", ErrInvalidInput)
	case principal < 0 || math.IsNaN(principal):
		return 0, fmt.Errorf("%w: principal must not be negative", ErrInvalidInput)
	case annualRatePct < 0 || math.IsNaN(annualRatePct):
		return 0, fmt.Errorf("%w: interest rate must not be negative", ErrInvalidInput)
	case math.IsInf(monthlyPayment, 0) || math.IsInf(principal, 0) || math.IsInf(annualRatePct, 0):
		return 0, fmt.Errorf("%w: amounts must be finite", ErrInvalidInput)
	}

	if annualRatePct == 0 {
		return principal / monthlyPayment, nil
	}

	r := monthlyRate(annualRatePct)
	interest := principal * r
	if monthlyPayment <= interest {
		return 0, fmt.Errorf("%w: payment insufficient to amortize debt (first month interest %.2f)",
			ErrInvalidInput, interest)
	}
	return math.Log(monthlyPayment/(monthlyPayment-interest)) / math.Log(1+r), nil
}

// MonthsToPayoff returns the whole number of months to retire principal,
// rounding down.
func MonthsToPayoff(principal, annualRatePct, monthlyPayment float64) (int, error) {
	exact, err := ExactMonthsToPayoff(principal, annualRatePct, monthlyPayment)
	if err != nil {
		return 0, err
	}
	return int(math.Floor(exact + monthEpsilon)), nil
}

// Payoff computes the payoff schedule summary relative to now.
func Payoff(principal, annualRatePct, monthlyPayment float64, now time.Time) (PayoffResult, error) {
	exact, err := ExactMonthsToPayoff(principal, annualRatePct, monthlyPayment)
	if err != nil {
		return PayoffResult{}, err
	}

	months := int(math.Floor(exact + monthEpsilon))
	interest := monthlyPayment*exact - principal
	if interest < 0 {
		interest = 0
	}

	return PayoffResult{
		Months:        months,
		ExactMonths:   exact,
		Date:          now.AddDate(0, months, 0),
		TotalInterest: interest,
	}, nil
}
