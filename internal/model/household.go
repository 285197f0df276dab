package model

import "sort"

// Financials holds one scope's questionnaire answers.
// Partner and joint scopes share the same shape.
type Financials struct {
	MonthlyIncome       float64 `yaml:"monthly_take_home_pay"`
	MonthlyExpenses     float64 `yaml:"total_monthly_expenses"`
	MonthlyDebtPayments float64 `yaml:"total_monthly_debt_payments"`

	// Expenses breaks monthly spending down by category. When present it
	// takes precedence over MonthlyExpenses.
	Expenses map[string]float64 `yaml:"expenses,omitempty"`

	// Allocations splits remaining funds by category, in percent.
	Allocations map[string]float64 `yaml:"allocations,omitempty"`

	Accounts []Account `yaml:"accounts,omitempty"`
	Debts    []Debt    `yaml:"debts,omitempty"`
	Goals    []Goal    `yaml:"goals,omitempty"`
	Assets   []Asset   `yaml:"assets,omitempty"`
}

// TotalExpenses returns the effective monthly expenses.
func (f Financials) TotalExpenses() float64 {
	if len(f.Expenses) == 0 {
		return f.MonthlyExpenses
	}
	var total float64
	for _, k := range SortedKeys(f.Expenses) {
		total += f.Expenses[k]
	}
	return total
}

// TotalDebtPayments returns the entered debt payment total, or the sum of
// the scope's debt payments when no total was entered.
func (f Financials) TotalDebtPayments() float64 {
	if f.MonthlyDebtPayments > 0 {
		return f.MonthlyDebtPayments
	}
	var total float64
	for _, d := range f.Debts {
		total += d.MonthlyPayment
	}
	return total
}

// Account looks up an account by name.
func (f Financials) Account(name string) (Account, bool) {
	for _, a := range f.Accounts {
		if a.Name == name {
			return a, true
		}
	}
	return Account{}, false
}

// Household groups both partners and their joint finances.
type Household struct {
	Partner1Name string `yaml:"partner1_name,omitempty"`
	Partner2Name string `yaml:"partner2_name,omitempty"`

	Partner1 Financials `yaml:"partner1"`
	Partner2 Financials `yaml:"partner2"`
	Joint    Financials `yaml:"joint"`
}

// Scope returns the financials owned by s.
func (h Household) Scope(s Scope) Financials {
	switch s {
	case ScopePartner1:
		return h.Partner1
	case ScopePartner2:
		return h.Partner2
	default:
		return h.Joint
	}
}

// SetScope replaces the financials owned by s.
func (h *Household) SetScope(s Scope, f Financials) {
	switch s {
	case ScopePartner1:
		h.Partner1 = f
	case ScopePartner2:
		h.Partner2 = f
	default:
		h.Joint = f
	}
}

// ScopeLabel returns the partner's name when set, else the default label.
func (h Household) ScopeLabel(s Scope) string {
	switch {
	case s == ScopePartner1 && h.Partner1Name != "":
		return h.Partner1Name
	case s == ScopePartner2 && h.Partner2Name != "":
		return h.Partner2Name
	}
	return s.Label()
}

// SortedKeys returns map keys in lexical order so sums and tables are stable.
func SortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
