package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/duofin/internal/cli"
	"github.com/theirongolddev/duofin/internal/finance"

	"github.com/spf13/cobra"
)

var flagPayment float64

var payoffCmd = &cobra.Command{
	Use:   "payoff",
	Short: "Months to pay off a debt with a fixed monthly payment",
	RunE:  runPayoff,
}

func init() {
	payoffCmd.Flags().Float64Var(&flagPrincipal, "principal", 0, "Amount owed")
	payoffCmd.Flags().Float64Var(&flagRate, "rate", 0, "Annual interest rate in percent")
	payoffCmd.Flags().Float64Var(&flagPayment, "payment", 0, "Monthly payment")
	rootCmd.AddCommand(payoffCmd)
}

func runPayoff(_ *cobra.Command, _ []string) error {
	res, err := finance.Payoff(flagPrincipal, flagRate, flagPayment, time.Now())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Debt payoff",
		Headers: []string{"", "Value"},
		Rows: [][]string{
			{"Principal", cli.FormatMoney(flagPrincipal)},
			{"Annual rate", cli.FormatRate(flagRate)},
			{"Monthly payment", cli.FormatMoney(flagPayment)},
			{"---"},
			{"Months to payoff", fmt.Sprintf("%d (%s)", res.Months, cli.FormatMonths(res.Months))},
			{"Exact months", fmt.Sprintf("%.2f", res.ExactMonths)},
			{"Paid off", cli.FormatMonthYear(res.Date)},
			{"Total interest", cli.FormatMoney(res.TotalInterest)},
		},
	}))
	fmt.Println()
	return nil
}
