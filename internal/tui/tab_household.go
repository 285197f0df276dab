package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/duofin/internal/cli"
	"github.com/theirongolddev/duofin/internal/tui/components"
	"github.com/theirongolddev/duofin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHouseholdTab(cw int) string {
	t := theme.Active
	r := a.report

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Remaining / month", Value: cli.FormatMoney(r.RemainingFunds)},
		{Label: "Account balances", Value: cli.FormatMoney(r.TotalBalance)},
		{Label: fmt.Sprintf("Projected %d", r.ProjectionYear), Value: cli.FormatMoney(r.TotalProjected)},
		{Label: "Net position", Value: cli.FormatMoney(r.NetPosition), Color: t.Signed(r.NetPosition)},
	}, cw))
	b.WriteString("\n")

	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	const colW = 15
	var body strings.Builder
	body.WriteString(headStyle.Render(fmt.Sprintf("%-14s%*s%*s%*s%*s",
		"", colW, "Remaining", colW, "Balances", colW, "Projected", colW, "Net")))
	for _, sr := range r.Scopes {
		body.WriteString("\n")
		body.WriteString(nameStyle.Render(fmt.Sprintf("%-14s", sr.Label)))
		body.WriteString(valueStyle.Render(fmt.Sprintf("%*s%*s%*s",
			colW, cli.FormatMoney(sr.RemainingFunds),
			colW, cli.FormatMoney(sr.TotalBalance),
			colW, cli.FormatMoney(sr.TotalProjected))))
		body.WriteString(lipgloss.NewStyle().Foreground(t.Signed(sr.NetPosition)).
			Render(fmt.Sprintf("%*s", colW, cli.FormatMoney(sr.NetPosition))))
	}
	b.WriteString(components.ContentCard("By scope", body.String(), cw))
	b.WriteString("\n")

	// Scopes with nothing projected are left out of the chart.
	var bars []components.HBar
	for _, sr := range r.Scopes {
		if sr.TotalProjected > 0 {
			bars = append(bars, components.HBar{
				Label: sr.Label,
				Value: sr.TotalProjected,
				Text:  cli.FormatMoneyShort(sr.TotalProjected),
			})
		}
	}
	if len(bars) > 0 {
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Projected balances in %d", r.ProjectionYear),
			components.HBarChart(bars, t.Accent, components.CardInnerWidth(cw)),
			cw,
		))
	}

	return b.String()
}
