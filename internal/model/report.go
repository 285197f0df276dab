package model

import "time"

// GoalStatus describes how a goal's progress was determined.
type GoalStatus string

const (
	GoalInProgress      GoalStatus = "in_progress"
	GoalComplete        GoalStatus = "complete"
	GoalAccountNotFound GoalStatus = "account_not_found"
	GoalDegenerate      GoalStatus = "degenerate"
	GoalPastDue         GoalStatus = "past_due"
)

// Label returns a human-readable status.
func (s GoalStatus) Label() string {
	switch s {
	case GoalInProgress:
		return "In progress"
	case GoalComplete:
		return "Complete"
	case GoalAccountNotFound:
		return "Account not found"
	case GoalDegenerate:
		return "No target"
	case GoalPastDue:
		return "Past due"
	default:
		return string(s)
	}
}

// AccountProjection is one account projected to the selected year.
type AccountProjection struct {
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	Balance   float64     `json:"balance"`
	Projected float64     `json:"projected"`
}

// GoalReport is one goal's evaluated progress.
type GoalReport struct {
	Name       string     `json:"name"`
	TargetCost float64    `json:"target_cost"`
	TargetYear int        `json:"target_year"`
	Account    string     `json:"linked_account,omitempty"`
	Balance    float64    `json:"balance"`
	Progress   float64    `json:"progress"`
	Status     GoalStatus `json:"status"`

	// ProjectedAtTarget is the linked account's projected balance in the
	// goal's target year. Progress is always based on Balance.
	ProjectedAtTarget float64 `json:"projected_at_target"`
	OnTrack           bool    `json:"on_track"`
}

// DebtReport is one debt's payoff projection. Err is set when the payoff
// cannot be computed; the other fields are then zero.
type DebtReport struct {
	Name          string    `json:"name"`
	Principal     float64   `json:"principal"`
	Months        int       `json:"months"`
	ExactMonths   float64   `json:"exact_months"`
	PayoffDate    time.Time `json:"payoff_date"`
	TotalInterest float64   `json:"total_interest"`
	Err           error     `json:"-"`
	Error         string    `json:"error,omitempty"`
}

// AllocationReport is the share of remaining funds set aside for a category.
type AllocationReport struct {
	Category string  `json:"category"`
	Percent  float64 `json:"percent"`
	Amount   float64 `json:"amount"`
}

// ScopeReport is the evaluation of one scope.
type ScopeReport struct {
	Scope          Scope   `json:"scope"`
	Label          string  `json:"label"`
	Income         float64 `json:"income"`
	Expenses       float64 `json:"expenses"`
	DebtPayments   float64 `json:"debt_payments"`
	RemainingFunds float64 `json:"remaining_funds"`

	TotalBalance   float64 `json:"total_balance"`
	TotalProjected float64 `json:"total_projected"`
	TotalAssets    float64 `json:"total_assets"`
	TotalDebt      float64 `json:"total_debt"`
	NetPosition    float64 `json:"net_position"`

	Accounts    []AccountProjection `json:"accounts"`
	Goals       []GoalReport        `json:"goals"`
	Debts       []DebtReport        `json:"debts"`
	Allocations []AllocationReport  `json:"allocations"`
}

// HouseholdReport is the union of the three scope evaluations.
type HouseholdReport struct {
	ProjectionYear int           `json:"projection_year"`
	EvaluatedAt    time.Time     `json:"evaluated_at"`
	Scopes         []ScopeReport `json:"scopes"`

	RemainingFunds float64 `json:"remaining_funds"`
	TotalBalance   float64 `json:"total_balance"`
	TotalProjected float64 `json:"total_projected"`
	NetPosition    float64 `json:"net_position"`
}

// Scope returns the report for s.
func (r HouseholdReport) Scope(s Scope) (ScopeReport, bool) {
	for _, sr := range r.Scopes {
		if sr.Scope == s {
			return sr, true
		}
	}
	return ScopeReport{}, false
}
