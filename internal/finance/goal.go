package finance

import "github.com/theirongolddev/duofin/internal/model"

// BalanceLookup resolves an account name to its current balance.
type BalanceLookup func(accountName string) (float64, bool)

// GoalResult is the outcome of GoalProgress.
type GoalResult struct {
	Balance  float64
	Progress float64 // always within [0, 1]
	Status   model.GoalStatus
}

// GoalProgress compares the linked account's current balance with the goal's
// target cost.
func GoalProgress(goal model.Goal, lookup BalanceLookup) GoalResult {
	if goal.LinkedAccount == "" || lookup == nil {
		return GoalResult{Status: model.GoalAccountNotFound}
	}
	balance, ok := lookup(goal.LinkedAccount)
	if !ok {
		return GoalResult{Status: model.GoalAccountNotFound}
	}

	if goal.TargetCost <= 0 {
		return GoalResult{Balance: balance, Status: model.GoalDegenerate}
	}

	progress := balance / goal.TargetCost
	if progress < 0 {
		progress = 0
	}
	if progress >= 1 {
		return GoalResult{Balance: balance, Progress: 1, Status: model.GoalComplete}
	}
	return GoalResult{Balance: balance, Progress: progress, Status: model.GoalInProgress}
}

// AccountLookup builds a BalanceLookup over one scope's accounts.
func AccountLookup(accounts []model.Account) BalanceLookup {
	balances := make(map[string]float64, len(accounts))
	for _, a := range accounts {
		balances[a.Name] = a.Balance
	}
	return func(name string) (float64, bool) {
		b, ok := balances[name]
		return b, ok
	}
}
