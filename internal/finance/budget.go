package finance

// RemainingFunds is income left after expenses and debt payments,
// floored at zero.
func RemainingFunds(income, expenses, debtPayments float64) float64 {
	remaining := income - expenses - debtPayments
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Allocate returns pct percent of amount.
func Allocate(amount, pct float64) float64 {
	return amount * pct / 100
}
