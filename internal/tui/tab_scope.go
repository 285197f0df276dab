package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/duofin/internal/cli"
	"github.com/theirongolddev/duofin/internal/finance"
	"github.com/theirongolddev/duofin/internal/model"
	"github.com/theirongolddev/duofin/internal/tui/components"
	"github.com/theirongolddev/duofin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderScopeTab(scope model.Scope, cw int) string {
	t := theme.Active
	sr, ok := a.report.Scope(scope)
	if !ok {
		return ""
	}
	f := a.household.Scope(scope)

	var b strings.Builder

	// Row 1: headline figures
	b.WriteString(components.MetricCardRow([]components.Metric{
		{
			Label: "Remaining / month",
			Value: cli.FormatMoney(sr.RemainingFunds),
			Note:  "of " + cli.FormatMoney(sr.Income) + " take-home",
		},
		{
			Label: "Account balances",
			Value: cli.FormatMoney(sr.TotalBalance),
			Note:  fmt.Sprintf("%d accounts", len(sr.Accounts)),
		},
		{
			Label: fmt.Sprintf("Projected %d", a.projectionYear),
			Value: cli.FormatMoney(sr.TotalProjected),
		},
		{
			Label: "Net position",
			Value: cli.FormatMoney(sr.NetPosition),
			Note:  "debt " + cli.FormatMoney(sr.TotalDebt),
			Color: t.Signed(sr.NetPosition),
		},
	}, cw))
	b.WriteString("\n")

	// Row 2: accounts + cash flow
	halves := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		halves = []int{cw, cw}
	}
	accounts := components.ContentCard("Accounts", a.accountsBody(sr, f, components.CardInnerWidth(halves[0])), halves[0])
	cashFlow := components.ContentCard("Cash flow", cashFlowBody(sr, f, components.CardInnerWidth(halves[1])), halves[1])
	b.WriteString(a.joinRow(accounts, cashFlow))
	b.WriteString("\n")

	// Row 3: goals + debts
	goals := components.ContentCard("Goals", goalsBody(sr, components.CardInnerWidth(halves[0])), halves[0])
	debts := components.ContentCard("Debts", debtsBody(sr), halves[1])
	b.WriteString(a.joinRow(goals, debts))

	return b.String()
}

func (a App) joinRow(left, right string) string {
	if a.isCompactLayout() {
		return left + "\n" + right
	}
	return components.CardRow([]string{left, right})
}

func (a App) accountsBody(sr model.ScopeReport, f model.Financials, innerW int) string {
	t := theme.Active
	if len(sr.Accounts) == 0 {
		return hint("No accounts yet. Press a to add one.")
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	years := a.projectionYear - a.now().Year()
	if years < 0 {
		years = 0
	}

	var lines []string
	for _, p := range sr.Accounts {
		lines = append(lines, nameStyle.Render(p.Name)+" "+dimStyle.Render(p.Type.Label()))

		line := "  " + valueStyle.Render(cli.FormatMoney(p.Balance)) +
			dimStyle.Render(" → ") + valueStyle.Render(cli.FormatMoney(p.Projected))
		if acc, ok := f.Account(p.Name); ok && years > 0 {
			series := finance.ProjectSeries(acc.Balance, acc.AnnualRatePct, acc.MonthlyContribution, years)
			spark := components.Sparkline(series, t.Accent)
			if lipgloss.Width(line)+1+lipgloss.Width(spark) <= innerW {
				line += " " + spark
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func cashFlowBody(sr model.ScopeReport, f model.Financials, innerW int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	row := func(label string, v float64) string {
		return labelStyle.Render(fmt.Sprintf("%-16s", label)) + valueStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(v)))
	}

	lines := []string{
		row("Take-home pay", sr.Income),
		row("Expenses", sr.Expenses),
		row("Debt payments", sr.DebtPayments),
		row("Remaining", sr.RemainingFunds),
	}

	if len(f.Expenses) > 0 {
		bars := make([]components.HBar, 0, len(f.Expenses))
		for _, category := range model.SortedKeys(f.Expenses) {
			v := f.Expenses[category]
			bars = append(bars, components.HBar{Label: category, Value: v, Text: cli.FormatMoney(v)})
		}
		lines = append(lines, "", labelStyle.Render("Expenses by category"),
			components.HBarChart(bars, t.Orange, innerW))
	}

	if len(sr.Allocations) > 0 {
		bars := make([]components.HBar, 0, len(sr.Allocations))
		for _, al := range sr.Allocations {
			bars = append(bars, components.HBar{
				Label: al.Category,
				Value: al.Amount,
				Text:  cli.FormatRate(al.Percent) + " " + cli.FormatMoney(al.Amount),
			})
		}
		lines = append(lines, "", labelStyle.Render("Allocation of remaining funds"),
			components.HBarChart(bars, t.Green, innerW))
	}

	if len(f.Assets) > 0 {
		lines = append(lines, "", labelStyle.Render("Other assets"))
		for _, as := range f.Assets {
			lines = append(lines, row(as.Name, as.Value))
		}
	}

	return strings.Join(lines, "\n")
}

func goalsBody(sr model.ScopeReport, innerW int) string {
	t := theme.Active
	if len(sr.Goals) == 0 {
		return hint("No goals yet. Press g to add one.")
	}

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange)

	labelW := innerW / 3
	barW := innerW - labelW - 6

	var lines []string
	for _, g := range sr.Goals {
		switch g.Status {
		case model.GoalAccountNotFound:
			lines = append(lines, g.Name+" "+warnStyle.Render("account not found"))
		case model.GoalDegenerate:
			lines = append(lines, g.Name+" "+dimStyle.Render("no target cost"))
		default:
			lines = append(lines, components.GoalBar(g.Name, g.Progress, labelW, barW))
		}

		detail := fmt.Sprintf("  %s by %d", cli.FormatMoney(g.TargetCost), g.TargetYear)
		if g.Status == model.GoalPastDue {
			detail += " · " + warnStyle.Render("past due")
		} else if g.Status != model.GoalAccountNotFound {
			detail += fmt.Sprintf(" · %s projected", cli.FormatMoneyShort(g.ProjectedAtTarget))
			if g.OnTrack {
				detail += " ✓"
			}
		}
		lines = append(lines, dimStyle.Render(detail))
	}
	return strings.Join(lines, "\n")
}

func debtsBody(sr model.ScopeReport) string {
	t := theme.Active
	if len(sr.Debts) == 0 {
		return hint("No debts. Press d to add one.")
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	var lines []string
	for _, d := range sr.Debts {
		lines = append(lines, nameStyle.Render(d.Name)+" "+dimStyle.Render(cli.FormatMoney(d.Principal)))
		if d.Err != nil {
			lines = append(lines, "  "+errStyle.Render(d.Error))
			continue
		}
		lines = append(lines, dimStyle.Render(fmt.Sprintf("  %s · %s · %s interest",
			cli.FormatMonths(d.Months),
			cli.FormatMonthYear(d.PayoffDate),
			cli.FormatMoney(d.TotalInterest))))
	}
	return strings.Join(lines, "\n")
}

func hint(s string) string {
	return lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render(s)
}
