// Package pipeline validates household input and evaluates it into reports.
package pipeline

import (
	"time"

	"github.com/theirongolddev/duofin/internal/finance"
	"github.com/theirongolddev/duofin/internal/model"
)

// Options controls an evaluation.
type Options struct {
	ProjectionYear int
	Now            time.Time
}

func (o Options) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

// Evaluate computes every scope independently and sums the household totals.
// It never fails: per-entity problems are carried on the entity's report.
func Evaluate(h model.Household, opts Options) model.HouseholdReport {
	now := opts.now()
	report := model.HouseholdReport{
		ProjectionYear: opts.ProjectionYear,
		EvaluatedAt:    now,
		Scopes:         make([]model.ScopeReport, 0, len(model.Scopes)),
	}

	for _, s := range model.Scopes {
		sr := EvaluateScope(s, h.Scope(s), opts.ProjectionYear, now)
		sr.Label = h.ScopeLabel(s)

		report.RemainingFunds = finance.Add(report.RemainingFunds, sr.RemainingFunds)
		report.TotalBalance = finance.Add(report.TotalBalance, sr.TotalBalance)
		report.TotalProjected = finance.Add(report.TotalProjected, sr.TotalProjected)
		report.NetPosition = finance.Add(report.NetPosition, sr.NetPosition)
		report.Scopes = append(report.Scopes, sr)
	}

	return report
}

// EvaluateScope computes one scope's report. Goals resolve only against
// f's own accounts.
func EvaluateScope(s model.Scope, f model.Financials, projectionYear int, now time.Time) model.ScopeReport {
	sr := model.ScopeReport{
		Scope:        s,
		Label:        s.Label(),
		Income:       f.MonthlyIncome,
		Expenses:     f.TotalExpenses(),
		DebtPayments: f.TotalDebtPayments(),
	}
	sr.RemainingFunds = finance.RemainingFunds(sr.Income, sr.Expenses, sr.DebtPayments)

	years := yearsUntil(projectionYear, now)
	sr.Accounts = make([]model.AccountProjection, 0, len(f.Accounts))
	for _, a := range f.Accounts {
		projected := finance.FutureValue(a.Balance, a.AnnualRatePct, years, a.MonthlyContribution)
		sr.Accounts = append(sr.Accounts, model.AccountProjection{
			Name:      a.Name,
			Type:      a.Type,
			Balance:   a.Balance,
			Projected: projected,
		})
		sr.TotalBalance = finance.Add(sr.TotalBalance, a.Balance)
		sr.TotalProjected = finance.Add(sr.TotalProjected, projected)
	}

	lookup := finance.AccountLookup(f.Accounts)
	sr.Goals = make([]model.GoalReport, 0, len(f.Goals))
	for _, g := range f.Goals {
		sr.Goals = append(sr.Goals, evaluateGoal(g, f, lookup, now))
	}

	sr.Debts = make([]model.DebtReport, 0, len(f.Debts))
	for _, d := range f.Debts {
		sr.Debts = append(sr.Debts, evaluateDebt(d, now))
		sr.TotalDebt = finance.Add(sr.TotalDebt, d.Principal)
	}

	for _, a := range f.Assets {
		sr.TotalAssets = finance.Add(sr.TotalAssets, a.Value)
	}
	sr.NetPosition = finance.Add(sr.TotalBalance, sr.TotalAssets, -sr.TotalDebt)

	sr.Allocations = make([]model.AllocationReport, 0, len(f.Allocations))
	for _, category := range model.SortedKeys(f.Allocations) {
		pct := f.Allocations[category]
		sr.Allocations = append(sr.Allocations, model.AllocationReport{
			Category: category,
			Percent:  pct,
			Amount:   finance.Allocate(sr.RemainingFunds, pct),
		})
	}

	return sr
}

func evaluateGoal(g model.Goal, f model.Financials, lookup finance.BalanceLookup, now time.Time) model.GoalReport {
	res := finance.GoalProgress(g, lookup)
	gr := model.GoalReport{
		Name:       g.Name,
		TargetCost: g.TargetCost,
		TargetYear: g.TargetYear,
		Account:    g.LinkedAccount,
		Balance:    res.Balance,
		Progress:   res.Progress,
		Status:     res.Status,
	}

	if res.Status == model.GoalAccountNotFound {
		return gr
	}
	if res.Status == model.GoalInProgress && g.TargetYear < now.Year() {
		gr.Status = model.GoalPastDue
	}
	if acct, ok := f.Account(g.LinkedAccount); ok {
		gr.ProjectedAtTarget = finance.FutureValue(acct.Balance, acct.AnnualRatePct,
			yearsUntil(g.TargetYear, now), acct.MonthlyContribution)
		gr.OnTrack = g.TargetCost > 0 && gr.ProjectedAtTarget >= g.TargetCost
	}
	return gr
}

func evaluateDebt(d model.Debt, now time.Time) model.DebtReport {
	dr := model.DebtReport{Name: d.Name, Principal: d.Principal}
	res, err := finance.Payoff(d.Principal, d.AnnualRatePct, d.MonthlyPayment, now)
	if err != nil {
		dr.Err = err
		dr.Error = err.Error()
		return dr
	}
	dr.Months = res.Months
	dr.ExactMonths = res.ExactMonths
	dr.PayoffDate = res.Date
	dr.TotalInterest = res.TotalInterest
	return dr
}

// yearsUntil is the whole number of calendar years from now to year,
// clamped at zero.
func yearsUntil(year int, now time.Time) float64 {
	years := year - now.Year()
	if years < 0 {
		return 0
	}
	return float64(years)
}
