package cli

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/duofin/internal/model"
)

// SummaryTable lists a scope's monthly cash flow and balance sheet.
func SummaryTable(sr model.ScopeReport) Table {
	return Table{
		Title:   sr.Label,
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Take-home pay", FormatMoney(sr.Income)},
			{"Expenses", FormatMoney(sr.Expenses)},
			{"Debt payments", FormatMoney(sr.DebtPayments)},
			{"Remaining funds", FormatMoney(sr.RemainingFunds)},
			{"---"},
			{"Account balances", FormatMoney(sr.TotalBalance)},
			{"Other assets", FormatMoney(sr.TotalAssets)},
			{"Debt", FormatMoney(sr.TotalDebt)},
			{"Net position", FormatMoney(sr.NetPosition)},
		},
	}
}

// AccountsTable lists each account with its projection.
func AccountsTable(sr model.ScopeReport, year int) Table {
	rows := make([][]string, 0, len(sr.Accounts)+2)
	for _, a := range sr.Accounts {
		rows = append(rows, []string{a.Name, a.Type.Label(), FormatMoney(a.Balance), FormatMoney(a.Projected)})
	}
	if len(sr.Accounts) > 1 {
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"TOTAL", "", FormatMoney(sr.TotalBalance), FormatMoney(sr.TotalProjected)})
	}
	return Table{
		Title:   "Accounts",
		Headers: []string{"Account", "Type", "Balance", fmt.Sprintf("Projected %d", year)},
		Rows:    rows,
	}
}

// GoalsTable lists each goal's progress against its linked account.
func GoalsTable(sr model.ScopeReport) Table {
	rows := make([][]string, 0, len(sr.Goals))
	for _, g := range sr.Goals {
		projected := ""
		if g.Status != model.GoalAccountNotFound {
			projected = FormatMoney(g.ProjectedAtTarget)
			if g.OnTrack {
				projected += " ✓"
			}
		}
		rows = append(rows, []string{
			g.Name,
			FormatMoney(g.TargetCost),
			fmt.Sprintf("%d", g.TargetYear),
			RenderProgressBar(g.Progress, 12),
			g.Status.Label(),
			projected,
		})
	}
	return Table{
		Title:   "Goals",
		Headers: []string{"Goal", "Target", "Year", "Progress", "Status", "Projected"},
		Rows:    rows,
	}
}

// DebtsTable lists each debt's payoff projection or its error.
func DebtsTable(sr model.ScopeReport) Table {
	rows := make([][]string, 0, len(sr.Debts))
	for _, d := range sr.Debts {
		if d.Err != nil {
			rows = append(rows, []string{d.Name, FormatMoney(d.Principal), Warn(shortError(d.Err)), "", ""})
			continue
		}
		rows = append(rows, []string{
			d.Name,
			FormatMoney(d.Principal),
			FormatMonths(d.Months),
			FormatMonthYear(d.PayoffDate),
			FormatMoney(d.TotalInterest),
		})
	}
	return Table{
		Title:   "Debts",
		Headers: []string{"Debt", "Principal", "Payoff", "Date", "Interest"},
		Rows:    rows,
	}
}

// AllocationsTable splits remaining funds by category.
func AllocationsTable(sr model.ScopeReport) Table {
	rows := make([][]string, 0, len(sr.Allocations))
	for _, a := range sr.Allocations {
		rows = append(rows, []string{a.Category, FormatRate(a.Percent), FormatMoney(a.Amount)})
	}
	return Table{
		Title:   "Allocations",
		Headers: []string{"Category", "Share", "Monthly"},
		Rows:    rows,
	}
}

// RenderScope renders every non-empty table for one scope.
func RenderScope(sr model.ScopeReport, year int) string {
	var b strings.Builder
	b.WriteString(RenderTable(SummaryTable(sr)))
	b.WriteString("\n")
	if len(sr.Accounts) > 0 {
		b.WriteString(RenderTable(AccountsTable(sr, year)))
		b.WriteString("\n")
	}
	if len(sr.Goals) > 0 {
		b.WriteString(RenderTable(GoalsTable(sr)))
		b.WriteString("\n")
	}
	if len(sr.Debts) > 0 {
		b.WriteString(RenderTable(DebtsTable(sr)))
		b.WriteString("\n")
	}
	if len(sr.Allocations) > 0 {
		b.WriteString(RenderTable(AllocationsTable(sr)))
		b.WriteString("\n")
	}
	return b.String()
}

// HouseholdTable compares the three scopes side by side.
func HouseholdTable(r model.HouseholdReport) Table {
	headers := []string{"Metric"}
	remaining := []string{"Remaining funds"}
	balance := []string{"Account balances"}
	projected := []string{fmt.Sprintf("Projected %d", r.ProjectionYear)}
	net := []string{"Net position"}

	for _, sr := range r.Scopes {
		headers = append(headers, sr.Label)
		remaining = append(remaining, FormatMoney(sr.RemainingFunds))
		balance = append(balance, FormatMoney(sr.TotalBalance))
		projected = append(projected, FormatMoney(sr.TotalProjected))
		net = append(net, FormatMoney(sr.NetPosition))
	}

	headers = append(headers, "Household")
	remaining = append(remaining, FormatMoney(r.RemainingFunds))
	balance = append(balance, FormatMoney(r.TotalBalance))
	projected = append(projected, FormatMoney(r.TotalProjected))
	net = append(net, FormatMoney(r.NetPosition))

	return Table{
		Title:   "Household",
		Headers: headers,
		Rows:    [][]string{remaining, balance, projected, net},
	}
}

// shortError drops the sentinel prefix so table cells stay narrow.
func shortError(err error) string {
	msg := err.Error()
	if _, rest, ok := strings.Cut(msg, ": "); ok {
		msg = rest
	}
	if cut, _, ok := strings.Cut(msg, " ("); ok {
		msg = cut
	}
	return msg
}
