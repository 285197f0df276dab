package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/duofin/internal/cli"
	"github.com/theirongolddev/duofin/internal/model"
	"github.com/theirongolddev/duofin/internal/pipeline"
	"github.com/theirongolddev/duofin/internal/store"

	"github.com/charmbracelet/huh"
)

// entryKind selects which questionnaire form is open.
type entryKind int

const (
	entryAccount entryKind = iota
	entryDebt
	entryGoal
	entryTotals
	entryExpense
	entryAllocation
	entryAsset
	entryName
)

func (k entryKind) String() string {
	switch k {
	case entryAccount:
		return "account"
	case entryDebt:
		return "debt"
	case entryGoal:
		return "goal"
	case entryTotals:
		return "income & expenses"
	case entryExpense:
		return "expense category"
	case entryAllocation:
		return "allocation"
	case entryAsset:
		return "asset"
	case entryName:
		return "name"
	default:
		return "entry"
	}
}

// entryValues is the raw text bound to the huh fields. It lives on the heap
// so the form keeps writing to it while App is copied by value.
type entryValues struct {
	Name         string
	Type         string
	Rate         string
	Balance      string
	Contribution string
	Principal    string
	Payment      string
	Target       string
	Year         string
	Linked       string
	Income       string
	Expenses     string
	DebtPayments string
	Amount       string
}

// newEntryValues pre-fills fields that have an obvious default.
func newEntryValues(kind entryKind, f model.Financials, now time.Time) *entryValues {
	v := &entryValues{}
	switch kind {
	case entryAccount:
		v.Type = string(model.Savings)
	case entryGoal:
		v.Year = strconv.Itoa(now.Year() + 5)
	case entryTotals:
		v.Income = amountText(f.MonthlyIncome)
		v.Expenses = amountText(f.MonthlyExpenses)
		v.DebtPayments = amountText(f.MonthlyDebtPayments)
	}
	return v
}

func amountText(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validateAmount(s string) error {
	_, err := cli.ParseAmount(s)
	return err
}

func validateOptionalAmount(s string) error {
	_, err := cli.ParseOptionalAmount(s)
	return err
}

func validateYear(now time.Time) func(string) error {
	return func(s string) error {
		y, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a year like 2030")
		}
		if y < now.Year() {
			return fmt.Errorf("must be %d or later", now.Year())
		}
		return nil
	}
}

// newEntryForm builds the huh form for one kind of entry. accounts lists
// the scope's account names for goal links.
func newEntryForm(kind entryKind, label string, v *entryValues, accounts []string, now time.Time) *huh.Form {
	var fields []huh.Field

	switch kind {
	case entryAccount:
		typeOpts := make([]huh.Option[string], len(model.AccountTypes))
		for i, t := range model.AccountTypes {
			typeOpts[i] = huh.NewOption(t.Label(), string(t))
		}
		fields = []huh.Field{
			huh.NewInput().Title("Account name").
				Description("Re-entering an existing name replaces it.").
				Value(&v.Name).Validate(validateName),
			huh.NewSelect[string]().Title("Type").Options(typeOpts...).Value(&v.Type),
			huh.NewInput().Title("Balance").Placeholder("0").Value(&v.Balance).Validate(validateAmount),
			huh.NewInput().Title("Annual interest rate %").Placeholder("0").Value(&v.Rate).Validate(validateOptionalAmount),
			huh.NewInput().Title("Monthly contribution").Placeholder("0").Value(&v.Contribution).Validate(validateOptionalAmount),
		}

	case entryDebt:
		fields = []huh.Field{
			huh.NewInput().Title("Debt name").Value(&v.Name).Validate(validateName),
			huh.NewInput().Title("Principal").Value(&v.Principal).Validate(validateAmount),
			huh.NewInput().Title("Annual interest rate %").Placeholder("0").Value(&v.Rate).Validate(validateOptionalAmount),
			huh.NewInput().Title("Monthly payment").Value(&v.Payment).Validate(func(s string) error {
				p, err := cli.ParseAmount(s)
				if err != nil {
					return err
				}
				if p <= 0 {
					return errors.New("must be more than zero")
				}
				return nil
			}),
		}

	case entryGoal:
		linkOpts := []huh.Option[string]{huh.NewOption("(none)", "")}
		for _, name := range accounts {
			linkOpts = append(linkOpts, huh.NewOption(name, name))
		}
		fields = []huh.Field{
			huh.NewInput().Title("Goal name").Value(&v.Name).Validate(validateName),
			huh.NewInput().Title("Target cost").Value(&v.Target).Validate(validateAmount),
			huh.NewInput().Title("Target year").Value(&v.Year).Validate(validateYear(now)),
			huh.NewSelect[string]().Title("Linked account").Options(linkOpts...).Value(&v.Linked),
		}

	case entryTotals:
		fields = []huh.Field{
			huh.NewInput().Title("Monthly take-home pay").Placeholder("0").Value(&v.Income).Validate(validateOptionalAmount),
			huh.NewInput().Title("Total monthly expenses").
				Description("Ignored once expense categories are entered.").
				Placeholder("0").Value(&v.Expenses).Validate(validateOptionalAmount),
			huh.NewInput().Title("Total monthly debt payments").
				Description("Leave blank to use the sum of entered debts.").
				Placeholder("0").Value(&v.DebtPayments).Validate(validateOptionalAmount),
		}

	case entryExpense:
		fields = []huh.Field{
			huh.NewInput().Title("Expense category").Placeholder("Housing").Value(&v.Name).Validate(validateName),
			huh.NewInput().Title("Monthly amount").Value(&v.Amount).Validate(validateAmount),
		}

	case entryAllocation:
		fields = []huh.Field{
			huh.NewInput().Title("Allocation category").Placeholder("Savings").Value(&v.Name).Validate(validateName),
			huh.NewInput().Title("Percent of remaining funds").Value(&v.Amount).Validate(func(s string) error {
				p, err := cli.ParseAmount(s)
				if err != nil {
					return err
				}
				if p > 100 {
					return errors.New("must be at most 100")
				}
				return nil
			}),
		}

	case entryAsset:
		fields = []huh.Field{
			huh.NewInput().Title("Asset name").Placeholder("Car").Value(&v.Name).Validate(validateName),
			huh.NewInput().Title("Value").Value(&v.Amount).Validate(validateAmount),
		}

	case entryName:
		fields = []huh.Field{
			huh.NewInput().Title("Display name").Value(&v.Name).Validate(validateName),
		}
	}

	group := huh.NewGroup(fields...).
		Title(fmt.Sprintf("%s · %s", label, kind)).
		Description("enter to continue, esc to cancel")

	return huh.NewForm(group).WithShowHelp(false)
}

// entry is a parsed form submission.
type entry struct {
	kind     entryKind
	account  model.Account
	debt     model.Debt
	goal     model.Goal
	asset    model.Asset
	category string
	amount   float64
	income   float64
	expenses float64
	payments float64
	name     string
}

// parse converts the raw field text into an entry.
func (v *entryValues) parse(kind entryKind) (entry, error) {
	e := entry{kind: kind}
	var errs []error
	amount := func(field, s string) float64 {
		f, err := cli.ParseOptionalAmount(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
		return f
	}
	name := strings.TrimSpace(v.Name)

	switch kind {
	case entryAccount:
		t, ok := model.ParseAccountType(v.Type)
		if !ok {
			errs = append(errs, fmt.Errorf("unknown account type %q", v.Type))
		}
		e.account = model.Account{
			Name:                name,
			Type:                t,
			Balance:             amount("balance", v.Balance),
			AnnualRatePct:       amount("rate", v.Rate),
			MonthlyContribution: amount("contribution", v.Contribution),
		}
	case entryDebt:
		e.debt = model.Debt{
			Name:           name,
			Principal:      amount("principal", v.Principal),
			AnnualRatePct:  amount("rate", v.Rate),
			MonthlyPayment: amount("payment", v.Payment),
		}
	case entryGoal:
		year, err := strconv.Atoi(strings.TrimSpace(v.Year))
		if err != nil {
			errs = append(errs, fmt.Errorf("target year: %w", err))
		}
		e.goal = model.Goal{
			Name:          name,
			TargetCost:    amount("target", v.Target),
			TargetYear:    year,
			LinkedAccount: v.Linked,
		}
	case entryTotals:
		e.income = amount("income", v.Income)
		e.expenses = amount("expenses", v.Expenses)
		e.payments = amount("debt payments", v.DebtPayments)
	case entryExpense, entryAllocation:
		e.category = name
		e.amount = amount("amount", v.Amount)
	case entryAsset:
		e.asset = model.Asset{Name: name, Value: amount("value", v.Amount)}
	case entryName:
		e.name = name
	}

	return e, errors.Join(errs...)
}

// applyTo returns a copy of f with the entry applied, replacing any entry
// of the same name.
func (e entry) applyTo(f model.Financials) model.Financials {
	out := f
	switch e.kind {
	case entryAccount:
		out.Accounts = replaceByName(f.Accounts, e.account, func(a model.Account) string { return a.Name })
	case entryDebt:
		out.Debts = replaceByName(f.Debts, e.debt, func(d model.Debt) string { return d.Name })
	case entryGoal:
		out.Goals = replaceByName(f.Goals, e.goal, func(g model.Goal) string { return g.Name })
	case entryAsset:
		out.Assets = replaceByName(f.Assets, e.asset, func(a model.Asset) string { return a.Name })
	case entryTotals:
		out.MonthlyIncome = e.income
		out.MonthlyExpenses = e.expenses
		out.MonthlyDebtPayments = e.payments
	case entryExpense:
		out.Expenses = withKey(f.Expenses, e.category, e.amount)
	case entryAllocation:
		out.Allocations = withKey(f.Allocations, e.category, e.amount)
	}
	return out
}

func replaceByName[T any](items []T, item T, name func(T) string) []T {
	out := make([]T, 0, len(items)+1)
	replaced := false
	for _, it := range items {
		if name(it) == name(item) {
			out = append(out, item)
			replaced = true
			continue
		}
		out = append(out, it)
	}
	if !replaced {
		out = append(out, item)
	}
	return out
}

func withKey(m map[string]float64, k string, v float64) map[string]float64 {
	out := make(map[string]float64, len(m)+1)
	for key, val := range m {
		out[key] = val
	}
	out[k] = v
	return out
}

// save writes the entry to the store.
func (e entry) save(st *store.Store, scope model.Scope) error {
	switch e.kind {
	case entryAccount:
		return st.PutAccount(scope, e.account)
	case entryDebt:
		return st.PutDebt(scope, e.debt)
	case entryGoal:
		return st.PutGoal(scope, e.goal)
	case entryAsset:
		return st.PutAsset(scope, e.asset)
	case entryTotals:
		return st.SetTotals(scope, e.income, e.expenses, e.payments)
	case entryExpense:
		return st.PutExpense(scope, e.category, e.amount)
	case entryAllocation:
		return st.PutAllocation(scope, e.category, e.amount)
	case entryName:
		return st.SetPartnerName(scope, e.name)
	}
	return fmt.Errorf("unknown entry kind %d", e.kind)
}

// submitEntry parses v, checks the scope would still be valid with the
// entry applied, then stores it. A new goal must not be due in the past;
// goals already stored are left to the report.
func submitEntry(st *store.Store, h model.Household, scope model.Scope, kind entryKind, v *entryValues, now time.Time) error {
	e, err := v.parse(kind)
	if err != nil {
		return err
	}
	if kind == entryName && scope == model.ScopeJoint {
		return errors.New("the joint scope has no display name")
	}

	label := h.ScopeLabel(scope)
	f := e.applyTo(h.Scope(scope))
	errs := pipeline.ValidateScope(label, f)
	if kind == entryGoal {
		errs = append(errs, pipeline.ValidateGoalYears(label, []model.Goal{e.goal}, now)...)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return e.save(st, scope)
}
