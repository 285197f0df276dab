// Package store keeps questionnaire entries in SQLite between form
// submissions. The default database lives in memory and disappears with
// the process.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/duofin/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// Store holds form entries for all three scopes.
type Store struct {
	db *sql.DB
}

// Open opens or creates the entry database. An empty dsn or MemoryDSN
// keeps everything in memory; anything else is a file path.
func Open(dsn string) (*Store, error) {
	source := MemoryDSN
	if dsn != "" && dsn != MemoryDSN {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o750); err != nil {
			return nil, fmt.Errorf("creating workbook dir: %w", err)
		}
		source = dsn + "?_pragma=journal_mode(wal)&_pragma=synchronous(normal)"
	}

	db, err := sql.Open("sqlite", source)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetPartnerName records the display name for a partner scope.
func (s *Store) SetPartnerName(scope model.Scope, name string) error {
	_, err := s.db.Exec(`INSERT INTO partners (scope, name) VALUES (?, ?)
		ON CONFLICT(scope) DO UPDATE SET name = excluded.name`, string(scope), name)
	return err
}

// SetTotals records a scope's monthly income, expense and debt payment totals.
func (s *Store) SetTotals(scope model.Scope, income, expenses, debtPayments float64) error {
	_, err := s.db.Exec(`INSERT INTO scope_totals (scope, income, expenses, debt_payments)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(scope) DO UPDATE SET
			income = excluded.income,
			expenses = excluded.expenses,
			debt_payments = excluded.debt_payments`,
		string(scope), income, expenses, debtPayments)
	return err
}

// PutAccount adds an account, replacing one with the same name in scope.
// A replaced account keeps its original position.
func (s *Store) PutAccount(scope model.Scope, a model.Account) error {
	return putAccount(s.db, scope, a)
}

// PutDebt adds a debt, replacing one with the same name in scope.
func (s *Store) PutDebt(scope model.Scope, d model.Debt) error {
	return putDebt(s.db, scope, d)
}

// PutGoal adds a goal, replacing one with the same name in scope.
func (s *Store) PutGoal(scope model.Scope, g model.Goal) error {
	return putGoal(s.db, scope, g)
}

// PutAsset adds an asset, replacing one with the same name in scope.
func (s *Store) PutAsset(scope model.Scope, a model.Asset) error {
	return putAsset(s.db, scope, a)
}

// PutExpense sets a monthly expense category.
func (s *Store) PutExpense(scope model.Scope, category string, amount float64) error {
	_, err := s.db.Exec(`INSERT INTO expenses (scope, category, amount) VALUES (?, ?, ?)
		ON CONFLICT(scope, category) DO UPDATE SET amount = excluded.amount`,
		string(scope), category, amount)
	return err
}

// PutAllocation sets the percent of remaining funds for a category.
func (s *Store) PutAllocation(scope model.Scope, category string, pct float64) error {
	_, err := s.db.Exec(`INSERT INTO allocations (scope, category, percent) VALUES (?, ?, ?)
		ON CONFLICT(scope, category) DO UPDATE SET percent = excluded.percent`,
		string(scope), category, pct)
	return err
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func putAccount(x execer, scope model.Scope, a model.Account) error {
	_, err := x.Exec(`INSERT INTO accounts
		(scope, name, type, annual_rate_pct, balance, monthly_contribution, position)
		VALUES (?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM accounts WHERE scope = ?))
		ON CONFLICT(scope, name) DO UPDATE SET
			type = excluded.type,
			annual_rate_pct = excluded.annual_rate_pct,
			balance = excluded.balance,
			monthly_contribution = excluded.monthly_contribution`,
		string(scope), a.Name, string(a.Type), a.AnnualRatePct, a.Balance, a.MonthlyContribution, string(scope))
	if err != nil {
		return fmt.Errorf("saving account %q: %w", a.Name, err)
	}
	return nil
}

func putDebt(x execer, scope model.Scope, d model.Debt) error {
	_, err := x.Exec(`INSERT INTO debts
		(scope, name, principal, annual_rate_pct, monthly_payment, position)
		VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM debts WHERE scope = ?))
		ON CONFLICT(scope, name) DO UPDATE SET
			principal = excluded.principal,
			annual_rate_pct = excluded.annual_rate_pct,
			monthly_payment = excluded.monthly_payment`,
		string(scope), d.Name, d.Principal, d.AnnualRatePct, d.MonthlyPayment, string(scope))
	if err != nil {
		return fmt.Errorf("saving debt %q: %w", d.Name, err)
	}
	return nil
}

func putGoal(x execer, scope model.Scope, g model.Goal) error {
	var linked sql.NullString
	if g.LinkedAccount != "" {
		linked = sql.NullString{String: g.LinkedAccount, Valid: true}
	}
	_, err := x.Exec(`INSERT INTO goals
		(scope, name, target_cost, target_year, linked_account, position)
		VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM goals WHERE scope = ?))
		ON CONFLICT(scope, name) DO UPDATE SET
			target_cost = excluded.target_cost,
			target_year = excluded.target_year,
			linked_account = excluded.linked_account`,
		string(scope), g.Name, g.TargetCost, g.TargetYear, linked, string(scope))
	if err != nil {
		return fmt.Errorf("saving goal %q: %w", g.Name, err)
	}
	return nil
}

func putAsset(x execer, scope model.Scope, a model.Asset) error {
	_, err := x.Exec(`INSERT INTO assets (scope, name, value, position)
		VALUES (?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM assets WHERE scope = ?))
		ON CONFLICT(scope, name) DO UPDATE SET value = excluded.value`,
		string(scope), a.Name, a.Value, string(scope))
	if err != nil {
		return fmt.Errorf("saving asset %q: %w", a.Name, err)
	}
	return nil
}
