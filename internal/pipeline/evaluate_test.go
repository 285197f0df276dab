package pipeline

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/theirongolddev/duofin/internal/finance"
	"github.com/theirongolddev/duofin/internal/model"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func sampleHousehold() model.Household {
	return model.Household{
		Partner1Name: "Sam",
		Partner1: model.Financials{
			MonthlyIncome:       5000,
			MonthlyExpenses:     3000,
			MonthlyDebtPayments: 500,
			Accounts: []model.Account{
				{Name: "Savings", Type: model.Savings, AnnualRatePct: 5, Balance: 10000},
			},
			Goals: []model.Goal{
				{Name: "Car", TargetCost: 20000, TargetYear: 2030, LinkedAccount: "Savings"},
			},
			Debts: []model.Debt{
				{Name: "Student loan", Principal: 5000, MonthlyPayment: 500},
			},
		},
		Partner2: model.Financials{
			MonthlyIncome:   1000,
			MonthlyExpenses: 2000,
			Accounts: []model.Account{
				{Name: "Checking", Type: model.Checking, Balance: 800},
			},
			Goals: []model.Goal{
				// Partner 1 owns "Savings"; it must not resolve here.
				{Name: "Trip", TargetCost: 3000, TargetYear: 2027, LinkedAccount: "Savings"},
			},
			Debts: []model.Debt{
				{Name: "Card", Principal: 12000, AnnualRatePct: 24, MonthlyPayment: 100},
			},
		},
		Joint: model.Financials{
			MonthlyIncome: 0,
			Expenses:      map[string]float64{"rent": 1800, "food": 600},
			Allocations:   map[string]float64{"emergency": 50, "travel": 25},
			Accounts: []model.Account{
				{Name: "House fund", Type: model.Investment, AnnualRatePct: 0, Balance: 4000, MonthlyContribution: 100},
			},
			Goals: []model.Goal{
				{Name: "Deposit", TargetCost: 0, TargetYear: 2028, LinkedAccount: "House fund"},
			},
			Assets: []model.Asset{{Name: "Car", Value: 7000}},
		},
	}
}

func TestEvaluate_RemainingFunds(t *testing.T) {
	report := Evaluate(sampleHousehold(), Options{ProjectionYear: 2036, Now: testNow})

	p1, _ := report.Scope(model.ScopePartner1)
	if p1.RemainingFunds != 1500 {
		t.Fatalf("partner1 remaining = %v, want 1500", p1.RemainingFunds)
	}
	p2, _ := report.Scope(model.ScopePartner2)
	if p2.RemainingFunds != 0 {
		t.Fatalf("partner2 remaining = %v, want 0 (clamped)", p2.RemainingFunds)
	}
	joint, _ := report.Scope(model.ScopeJoint)
	if joint.Expenses != 2400 {
		t.Fatalf("joint expenses = %v, want category sum 2400", joint.Expenses)
	}
	if report.RemainingFunds != 1500 {
		t.Fatalf("household remaining = %v, want 1500", report.RemainingFunds)
	}
	if p1.Label != "Sam" || p2.Label != "Partner 2" {
		t.Fatalf("labels = %q, %q", p1.Label, p2.Label)
	}
}

func TestEvaluate_Projections(t *testing.T) {
	report := Evaluate(sampleHousehold(), Options{ProjectionYear: 2036, Now: testNow})

	p1, _ := report.Scope(model.ScopePartner1)
	if len(p1.Accounts) != 1 {
		t.Fatalf("partner1 accounts = %d, want 1", len(p1.Accounts))
	}
	if math.Abs(p1.Accounts[0].Projected-16470.09) > 0.01 {
		t.Fatalf("projected = %.2f, want ~16470.09", p1.Accounts[0].Projected)
	}

	joint, _ := report.Scope(model.ScopeJoint)
	// Zero rate with a modeled contribution: 4000 + 100*10*12.
	if joint.Accounts[0].Projected != 16000 {
		t.Fatalf("joint projected = %v, want 16000", joint.Accounts[0].Projected)
	}

	past := Evaluate(sampleHousehold(), Options{ProjectionYear: 2020, Now: testNow})
	p1, _ = past.Scope(model.ScopePartner1)
	if p1.Accounts[0].Projected != 10000 {
		t.Fatalf("past projection = %v, want current balance 10000", p1.Accounts[0].Projected)
	}
}

func TestEvaluate_GoalsStayInScope(t *testing.T) {
	report := Evaluate(sampleHousehold(), Options{ProjectionYear: 2036, Now: testNow})

	p1, _ := report.Scope(model.ScopePartner1)
	if got := p1.Goals[0]; got.Status != model.GoalInProgress || got.Progress != 0.5 {
		t.Fatalf("partner1 goal = %+v, want in_progress at 0.5", got)
	}
	if p1.Goals[0].OnTrack {
		t.Fatalf("partner1 goal should not be on track: %+v", p1.Goals[0])
	}

	p2, _ := report.Scope(model.ScopePartner2)
	if got := p2.Goals[0]; got.Status != model.GoalAccountNotFound || got.Progress != 0 {
		t.Fatalf("partner2 goal = %+v, want account_not_found", got)
	}

	joint, _ := report.Scope(model.ScopeJoint)
	if got := joint.Goals[0]; got.Status != model.GoalDegenerate || got.Progress != 0 {
		t.Fatalf("joint goal = %+v, want degenerate with zero progress", got)
	}
}

func TestEvaluate_DebtFailuresAreIsolated(t *testing.T) {
	report := Evaluate(sampleHousehold(), Options{ProjectionYear: 2036, Now: testNow})

	p1, _ := report.Scope(model.ScopePartner1)
	if p1.Debts[0].Err != nil || p1.Debts[0].Months != 10 {
		t.Fatalf("partner1 debt = %+v, want 10 months", p1.Debts[0])
	}

	p2, _ := report.Scope(model.ScopePartner2)
	if !errors.Is(p2.Debts[0].Err, finance.ErrInvalidInput) {
		t.Fatalf("partner2 debt err = %v, want ErrInvalidInput", p2.Debts[0].Err)
	}
	if p2.Debts[0].Error == "" {
		t.Fatal("partner2 debt should carry an error message")
	}
	// The failing debt still counts toward net position.
	if p2.NetPosition != 800-12000 {
		t.Fatalf("partner2 net position = %v, want %v", p2.NetPosition, 800-12000)
	}
}

func TestEvaluate_AllocationsAndNetPosition(t *testing.T) {
	h := sampleHousehold()
	h.Joint.MonthlyIncome = 4400

	report := Evaluate(h, Options{ProjectionYear: 2036, Now: testNow})
	joint, _ := report.Scope(model.ScopeJoint)

	if joint.RemainingFunds != 2000 {
		t.Fatalf("joint remaining = %v, want 2000", joint.RemainingFunds)
	}
	if len(joint.Allocations) != 2 {
		t.Fatalf("allocations = %d, want 2", len(joint.Allocations))
	}
	if a := joint.Allocations[0]; a.Category != "emergency" || a.Amount != 1000 {
		t.Fatalf("first allocation = %+v, want emergency 1000", a)
	}
	if a := joint.Allocations[1]; a.Category != "travel" || a.Amount != 500 {
		t.Fatalf("second allocation = %+v, want travel 500", a)
	}
	if joint.NetPosition != 11000 {
		t.Fatalf("joint net position = %v, want 11000", joint.NetPosition)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	h := sampleHousehold()
	opts := Options{ProjectionYear: 2036, Now: testNow}

	a := Evaluate(h, opts)
	b := Evaluate(h, opts)
	if a.RemainingFunds != b.RemainingFunds || a.TotalProjected != b.TotalProjected || a.NetPosition != b.NetPosition {
		t.Fatalf("evaluations differ: %+v vs %+v", a, b)
	}
	if len(a.Scopes) != 3 || a.Scopes[0].Scope != model.ScopePartner1 || a.Scopes[2].Scope != model.ScopeJoint {
		t.Fatalf("unexpected scope order: %+v", a.Scopes)
	}
}

func TestEvaluate_ExtremeRateStaysEncodable(t *testing.T) {
	h := sampleHousehold()
	h.Partner1.Accounts = append(h.Partner1.Accounts,
		model.Account{Name: "Moonshot", Type: model.Investment, AnnualRatePct: 1e6, Balance: 1},
		model.Account{Name: "Idle", Type: model.Savings, AnnualRatePct: 1e6},
	)
	h.Joint.Accounts[0].AnnualRatePct = 1e6
	if err := Validate(h); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	report := Evaluate(h, Options{ProjectionYear: 2036, Now: testNow})
	p1, _ := report.Scope(model.ScopePartner1)
	if got := p1.Accounts[1].Projected; got != math.MaxFloat64 {
		t.Fatalf("Moonshot projected = %v, want MaxFloat64", got)
	}
	if got := p1.Accounts[2].Projected; got != 0 {
		t.Fatalf("Idle projected = %v, want 0", got)
	}
	if math.IsInf(report.TotalProjected, 0) || math.IsNaN(report.TotalProjected) {
		t.Fatalf("household projected = %v, want finite", report.TotalProjected)
	}
	if _, err := json.Marshal(report); err != nil {
		t.Fatalf("json.Marshal(report) error: %v", err)
	}
}
