// Package model defines the ledger records duofin evaluates.
package model

import "strings"

// Scope identifies who owns a set of accounts, debts and goals.
type Scope string

const (
	ScopePartner1 Scope = "partner1"
	ScopePartner2 Scope = "partner2"
	ScopeJoint    Scope = "joint"
)

// Scopes lists every scope in display order.
var Scopes = []Scope{ScopePartner1, ScopePartner2, ScopeJoint}

// Label returns the default display label for the scope.
func (s Scope) Label() string {
	switch s {
	case ScopePartner1:
		return "Partner 1"
	case ScopePartner2:
		return "Partner 2"
	case ScopeJoint:
		return "Joint"
	default:
		return string(s)
	}
}

// Valid reports whether s is one of the known scopes.
func (s Scope) Valid() bool {
	return s == ScopePartner1 || s == ScopePartner2 || s == ScopeJoint
}

// AccountType is the kind of a deposit or investment account.
type AccountType string

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Investment AccountType = "investment"
)

// AccountTypes lists the supported account types.
var AccountTypes = []AccountType{Checking, Savings, Investment}

// ParseAccountType matches a type name case-insensitively.
func ParseAccountType(s string) (AccountType, bool) {
	for _, t := range AccountTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, true
		}
	}
	return "", false
}

// Label returns the capitalized type name.
func (t AccountType) Label() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Account is a balance that can grow under compound interest.
type Account struct {
	Name                string      `yaml:"name"`
	Type                AccountType `yaml:"type"`
	AnnualRatePct       float64     `yaml:"annual_interest_rate_pct"`
	Balance             float64     `yaml:"balance"`
	MonthlyContribution float64     `yaml:"monthly_contribution,omitempty"`
}

// Debt is an amortizing loan paid with a fixed monthly payment.
type Debt struct {
	Name           string  `yaml:"name"`
	Principal      float64 `yaml:"principal_amount"`
	AnnualRatePct  float64 `yaml:"annual_interest_rate_pct"`
	MonthlyPayment float64 `yaml:"monthly_payment"`
}

// Goal is a savings target, optionally tracked against one account.
type Goal struct {
	Name          string  `yaml:"name"`
	TargetCost    float64 `yaml:"target_cost"`
	TargetYear    int     `yaml:"target_year"`
	LinkedAccount string  `yaml:"linked_account_name,omitempty"`
}

// Asset is a holding that is not an interest-bearing account (home, car).
type Asset struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}
