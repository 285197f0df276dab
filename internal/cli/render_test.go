package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/duofin/internal/model"
)

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Account", "Balance"},
		Rows: [][]string{
			{"Savings", "$10.00"},
			{"---"},
			{"Brokerage", "$1,000.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}

	width := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("line %d width = %d, want %d:\n%s", i, w, width, out)
		}
	}
	if !strings.Contains(out, "    $10.00 ") {
		t.Fatalf("numeric column not right-aligned:\n%s", out)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Fatalf("RenderTable(empty) = %q, want empty", got)
	}
}

func TestRenderProgressBar(t *testing.T) {
	if got := RenderProgressBar(0.5, 10); !strings.Contains(got, "50.0%") {
		t.Fatalf("RenderProgressBar(0.5) = %q", got)
	}
	if got := RenderProgressBar(3, 10); !strings.Contains(got, "100.0%") {
		t.Fatalf("RenderProgressBar(3) = %q, want clamped to 100%%", got)
	}
	if got := RenderProgressBar(0.5, 0); got != "" {
		t.Fatalf("RenderProgressBar(width 0) = %q", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 50, 100}); got != "▁▄█" {
		t.Fatalf("RenderSparkline = %q, want ▁▄█", got)
	}
	if got := RenderSparkline(nil); got != "" {
		t.Fatalf("RenderSparkline(nil) = %q", got)
	}
}

func TestRenderScope(t *testing.T) {
	sr := model.ScopeReport{
		Label:          "Joint",
		Income:         5000,
		RemainingFunds: 1500,
		Accounts: []model.AccountProjection{
			{Name: "Savings", Type: model.Savings, Balance: 10000, Projected: 16470.09},
		},
		Goals: []model.GoalReport{
			{Name: "Car", TargetCost: 20000, TargetYear: 2030, Progress: 0.5, Status: model.GoalInProgress},
		},
		Debts: []model.DebtReport{
			{Name: "Loan", Principal: 5000, Months: 10, PayoffDate: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	out := RenderScope(sr, 2036)
	for _, want := range []string{"Joint", "$1,500.00", "Projected 2036", "$16,470.09", "In progress", "10 mo", "Jan 2027"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScope output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Allocations") {
		t.Errorf("empty allocations table rendered:\n%s", out)
	}
}
