// Package finance implements the household calculators: compound-interest
// future value, amortized debt payoff and goal progress.
package finance

import "errors"

// ErrInvalidInput marks out-of-domain calculator input.
var ErrInvalidInput = errors.New("invalid input")
