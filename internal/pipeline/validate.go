package pipeline

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/theirongolddev/duofin/internal/finance"
	"github.com/theirongolddev/duofin/internal/model"
)

// ValidateProjectionYear rejects projection years in the past.
func ValidateProjectionYear(year int, now time.Time) error {
	if year < now.Year() {
		return fmt.Errorf("%w: projection year %d is before %d", finance.ErrInvalidInput, year, now.Year())
	}
	return nil
}

// Validate checks every scope and returns all problems joined together,
// or nil when the household can be evaluated. Goal target years are not
// checked here: a stored goal whose year has passed is reported as past due.
func Validate(h model.Household) error {
	var errs []error
	for _, s := range model.Scopes {
		errs = append(errs, ValidateScope(h.ScopeLabel(s), h.Scope(s))...)
	}
	return errors.Join(errs...)
}

// ValidateImport checks a household arriving from outside the store. It adds
// the goal target year check to Validate.
func ValidateImport(h model.Household, now time.Time) error {
	var errs []error
	for _, s := range model.Scopes {
		label := h.ScopeLabel(s)
		f := h.Scope(s)
		errs = append(errs, ValidateScope(label, f)...)
		errs = append(errs, ValidateGoalYears(label, f.Goals, now)...)
	}
	return errors.Join(errs...)
}

// ValidateGoalYears rejects goals due before the current year.
func ValidateGoalYears(label string, goals []model.Goal, now time.Time) []error {
	var errs []error
	for _, g := range goals {
		if g.TargetYear < now.Year() {
			errs = append(errs, fmt.Errorf("%w: %s: goal %q target year %d is before %d",
				finance.ErrInvalidInput, label, g.Name, g.TargetYear, now.Year()))
		}
	}
	return errs
}

// ValidateScope returns one error per problem found in f.
func ValidateScope(label string, f model.Financials) []error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", finance.ErrInvalidInput, label, fmt.Sprintf(format, args...)))
	}

	if !nonNegative(f.MonthlyIncome) {
		bad("monthly take-home pay must not be negative")
	}
	if !nonNegative(f.MonthlyExpenses) {
		bad("monthly expenses must not be negative")
	}
	if !nonNegative(f.MonthlyDebtPayments) {
		bad("monthly debt payments must not be negative")
	}
	for _, category := range model.SortedKeys(f.Expenses) {
		if !nonNegative(f.Expenses[category]) {
			bad("expense %q must not be negative", category)
		}
	}

	var allocated float64
	for _, category := range model.SortedKeys(f.Allocations) {
		pct := f.Allocations[category]
		if !nonNegative(pct) || pct > 100 {
			bad("allocation %q must be between 0 and 100 percent", category)
			continue
		}
		allocated += pct
	}
	if allocated > 100 {
		bad("allocations add up to %.1f%%, more than 100%%", allocated)
	}

	seen := make(map[string]struct{}, len(f.Accounts))
	for _, a := range f.Accounts {
		switch {
		case a.Name == "":
			bad("account name is required")
		case hasKey(seen, a.Name):
			bad("account %q is entered more than once", a.Name)
		}
		seen[a.Name] = struct{}{}

		if _, ok := model.ParseAccountType(string(a.Type)); !ok {
			bad("account %q has unknown type %q", a.Name, a.Type)
		}
		if !nonNegative(a.Balance) {
			bad("account %q balance must not be negative", a.Name)
		}
		if !nonNegative(a.AnnualRatePct) {
			bad("account %q interest rate must not be negative", a.Name)
		}
		if !nonNegative(a.MonthlyContribution) {
			bad("account %q contribution must not be negative", a.Name)
		}
	}

	debts := make(map[string]struct{}, len(f.Debts))
	for _, d := range f.Debts {
		switch {
		case d.Name == "":
			bad("debt name is required")
		case hasKey(debts, d.Name):
			bad("debt %q is entered more than once", d.Name)
		}
		debts[d.Name] = struct{}{}
		if !nonNegative(d.Principal) {
			bad("debt %q principal must not be negative", d.Name)
		}
		if !nonNegative(d.AnnualRatePct) {
			bad("debt %q interest rate must not be negative", d.Name)
		}
		if !(d.MonthlyPayment > 0) || math.IsInf(d.MonthlyPayment, 0) {
			bad("debt %q monthly payment must be positive", d.Name)
		}
	}

	goals := make(map[string]struct{}, len(f.Goals))
	for _, g := range f.Goals {
		switch {
		case g.Name == "":
			bad("goal name is required")
		case hasKey(goals, g.Name):
			bad("goal %q is entered more than once", g.Name)
		}
		goals[g.Name] = struct{}{}

		if !nonNegative(g.TargetCost) {
			bad("goal %q target cost must not be negative", g.Name)
		}
	}

	assets := make(map[string]struct{}, len(f.Assets))
	for _, a := range f.Assets {
		switch {
		case a.Name == "":
			bad("asset name is required")
		case hasKey(assets, a.Name):
			bad("asset %q is entered more than once", a.Name)
		}
		assets[a.Name] = struct{}{}

		if !nonNegative(a.Value) {
			bad("asset %q value must not be negative", a.Name)
		}
	}

	return errs
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

func hasKey(m map[string]struct{}, k string) bool {
	_, ok := m[k]
	return ok
}
