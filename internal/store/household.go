package store

import (
	"database/sql"
	"fmt"

	"github.com/theirongolddev/duofin/internal/model"
)

var entryTables = []string{
	"partners", "scope_totals", "accounts", "debts", "goals", "assets", "expenses", "allocations",
}

// ReplaceHousehold discards every entry and stores h in one transaction.
func (s *Store) ReplaceHousehold(h model.Household) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range entryTables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, p := range []struct {
		scope model.Scope
		name  string
	}{
		{model.ScopePartner1, h.Partner1Name},
		{model.ScopePartner2, h.Partner2Name},
	} {
		if p.name == "" {
			continue
		}
		if _, err := tx.Exec("INSERT INTO partners (scope, name) VALUES (?, ?)", string(p.scope), p.name); err != nil {
			return err
		}
	}

	for _, scope := range model.Scopes {
		if err := insertScope(tx, scope, h.Scope(scope)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertScope(tx *sql.Tx, scope model.Scope, f model.Financials) error {
	_, err := tx.Exec(`INSERT INTO scope_totals (scope, income, expenses, debt_payments) VALUES (?, ?, ?, ?)`,
		string(scope), f.MonthlyIncome, f.MonthlyExpenses, f.MonthlyDebtPayments)
	if err != nil {
		return err
	}

	for _, a := range f.Accounts {
		if err := putAccount(tx, scope, a); err != nil {
			return err
		}
	}
	for _, d := range f.Debts {
		if err := putDebt(tx, scope, d); err != nil {
			return err
		}
	}
	for _, g := range f.Goals {
		if err := putGoal(tx, scope, g); err != nil {
			return err
		}
	}
	for _, a := range f.Assets {
		if err := putAsset(tx, scope, a); err != nil {
			return err
		}
	}
	for category, amount := range f.Expenses {
		if _, err := tx.Exec("INSERT INTO expenses (scope, category, amount) VALUES (?, ?, ?)",
			string(scope), category, amount); err != nil {
			return err
		}
	}
	for category, pct := range f.Allocations {
		if _, err := tx.Exec("INSERT INTO allocations (scope, category, percent) VALUES (?, ?, ?)",
			string(scope), category, pct); err != nil {
			return err
		}
	}
	return nil
}

// LoadHousehold reads a snapshot of every scope.
func (s *Store) LoadHousehold() (model.Household, error) {
	var h model.Household
	scopes := map[model.Scope]*model.Financials{
		model.ScopePartner1: &h.Partner1,
		model.ScopePartner2: &h.Partner2,
		model.ScopeJoint:    &h.Joint,
	}
	get := func(raw string) *model.Financials {
		return scopes[model.Scope(raw)]
	}

	if err := s.each("SELECT scope, name FROM partners", func(rows *sql.Rows) error {
		var scope, name string
		if err := rows.Scan(&scope, &name); err != nil {
			return err
		}
		switch model.Scope(scope) {
		case model.ScopePartner1:
			h.Partner1Name = name
		case model.ScopePartner2:
			h.Partner2Name = name
		}
		return nil
	}); err != nil {
		return h, fmt.Errorf("loading partners: %w", err)
	}

	if err := s.each("SELECT scope, income, expenses, debt_payments FROM scope_totals", func(rows *sql.Rows) error {
		var scope string
		var income, expenses, debtPayments float64
		if err := rows.Scan(&scope, &income, &expenses, &debtPayments); err != nil {
			return err
		}
		if f := get(scope); f != nil {
			f.MonthlyIncome = income
			f.MonthlyExpenses = expenses
			f.MonthlyDebtPayments = debtPayments
		}
		return nil
	}); err != nil {
		return h, fmt.Errorf("loading totals: %w", err)
	}

	if err := s.each(`SELECT scope, name, type, annual_rate_pct, balance, monthly_contribution
		FROM accounts ORDER BY scope, position`, func(rows *sql.Rows) error {
		var scope, accountType string
		var a model.Account
		if err := rows.Scan(&scope, &a.Name, &accountType, &a.AnnualRatePct, &a.Balance, &a.MonthlyContribution); err != nil {
			return err
		}
		a.Type = model.AccountType(accountType)
		if f := get(scope); f != nil {
			f.Accounts = append(f.Accounts, a)
		}
		return nil
	}); err != nil {
		return h, fmt.Errorf("loading accounts: %w", err)
	}

	if err := s.each(`SELECT scope, name, principal, annual_rate_pct, monthly_payment
		FROM debts ORDER BY scope, position`, func(rows *sql.Rows) error {
		var scope string
		var d model.Debt
		if err := rows.Scan(&scope, &d.Name, &d.Principal, &d.AnnualRatePct, &d.MonthlyPayment); err != nil {
			return err
		}
		if f := get(scope); f != nil {
			f.Debts = append(f.Debts, d)
		}
		return nil
	}); err != nil {
		return h, fmt.Errorf("loading debts: %w", err)
	}

	if err := s.each(`SELECT scope, name, target_cost, target_year, linked_account
		FROM goals ORDER BY scope, position`, func(rows *sql.Rows) error {
		var scope string
		var linked sql.NullString
		var g model.Goal
		if err := rows.Scan(&scope, &g.Name, &g.TargetCost, &g.TargetYear, &linked); err != nil {
			return err
		}
		if linked.Valid {
			g.LinkedAccount = linked.String
		}
		if f := get(scope); f != nil {
			f.Goals = append(f.Goals, g)
		}
		return nil
	}); err != nil {
		return h, fmt.Errorf("loading goals: %w", err)
	}

	if err := s.each("SELECT scope, name, value FROM assets ORDER BY scope, position", func(rows *sql.Rows) error {
		var scope string
		var a model.Asset
		if err := rows.Scan(&scope, &a.Name, &a.Value); err != nil {
			return err
		}
		if f := get(scope); f != nil {
			f.Assets = append(f.Assets, a)
		}
		return nil
	}); err != nil {
		return h, fmt.Errorf("loading assets: %w", err)
	}

	if err := s.each("SELECT scope, category, amount FROM expenses", func(rows *sql.Rows) error {
		var scope, category string
		var amount float64
		if err := rows.Scan(&scope, &category, &amount); err != nil {
			return err
		}
		if f := get(scope); f != nil {
			if f.Expenses == nil {
				f.Expenses = make(map[string]float64)
			}
			f.Expenses[category] = amount
		}
		return nil
	}); err != nil {
		return h, fmt.Errorf("loading expenses: %w", err)
	}

	if err := s.each("SELECT scope, category, percent FROM allocations", func(rows *sql.Rows) error {
		var scope, category string
		var pct float64
		if err := rows.Scan(&scope, &category, &pct); err != nil {
			return err
		}
		if f := get(scope); f != nil {
			if f.Allocations == nil {
				f.Allocations = make(map[string]float64)
			}
			f.Allocations[category] = pct
		}
		return nil
	}); err != nil {
		return h, fmt.Errorf("loading allocations: %w", err)
	}

	return h, nil
}

func (s *Store) each(query string, fn func(*sql.Rows) error) error {
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
