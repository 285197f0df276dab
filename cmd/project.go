package cmd

import (
	"fmt"
	"math"

	"github.com/theirongolddev/duofin/internal/cli"
	"github.com/theirongolddev/duofin/internal/finance"

	"github.com/spf13/cobra"
)

var (
	flagPrincipal    float64
	flagRate         float64
	flagYears        float64
	flagContribution float64
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a balance forward with monthly compounding",
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().Float64Var(&flagPrincipal, "principal", 0, "Starting balance")
	projectCmd.Flags().Float64Var(&flagRate, "rate", 0, "Annual interest rate in percent")
	projectCmd.Flags().Float64Var(&flagYears, "years", 10, "Years to project")
	projectCmd.Flags().Float64Var(&flagContribution, "contribution", 0, "Monthly contribution")
	rootCmd.AddCommand(projectCmd)
}

func runProject(_ *cobra.Command, _ []string) error {
	for name, v := range map[string]float64{
		"principal":    flagPrincipal,
		"rate":         flagRate,
		"contribution": flagContribution,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be a non-negative number", finance.ErrInvalidInput, name)
		}
	}

	if math.IsNaN(flagYears) || math.IsInf(flagYears, 0) {
		return fmt.Errorf("%w: years must be a finite number", finance.ErrInvalidInput)
	}

	fv := finance.FutureValue(flagPrincipal, flagRate, flagYears, flagContribution)
	years := math.Max(flagYears, 0)
	contributed := flagPrincipal + flagContribution*years*12

	rows := [][]string{
		{"Starting balance", cli.FormatMoney(flagPrincipal)},
		{"Annual rate", cli.FormatRate(flagRate)},
		{"Monthly contribution", cli.FormatMoney(flagContribution)},
		{"Years", fmt.Sprintf("%g", years)},
		{"---"},
		{"Contributed", cli.FormatMoney(contributed)},
		{"Interest earned", cli.FormatMoney(fv - contributed)},
		{"Future value", cli.FormatMoney(fv)},
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Projection",
		Headers: []string{"", "Value"},
		Rows:    rows,
	}))

	if years >= 2 {
		series := finance.ProjectSeries(flagPrincipal, flagRate, flagContribution, int(math.Min(years, finance.MaxSeriesYears)))
		fmt.Printf("  %s  %s\n", cli.RenderSparkline(series), cli.Muted(fmt.Sprintf("year 0 to %d", len(series)-1)))
	}
	fmt.Println()
	return nil
}
