package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/duofin/internal/cli"
	"github.com/theirongolddev/duofin/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagJSON  bool
	flagScope string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the household report",
	Long:  "Print remaining funds, projections, goal progress and debt payoff for each scope.",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&flagJSON, "json", false, "Write the report as JSON")
	reportCmd.Flags().StringVarP(&flagScope, "scope", "s", "", "Only one scope: partner1, partner2 or joint")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	scope := model.Scope(flagScope)
	if flagScope != "" && !scope.Valid() {
		return fmt.Errorf("unknown scope %q (want partner1, partner2 or joint)", flagScope)
	}

	report, err := loadReport(time.Now())
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if scope != "" {
			sr, _ := report.Scope(scope)
			return enc.Encode(sr)
		}
		return enc.Encode(report)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("HOUSEHOLD FINANCES  projected to %d", report.ProjectionYear)))
	fmt.Println()

	for _, sr := range report.Scopes {
		if scope != "" && sr.Scope != scope {
			continue
		}
		fmt.Print(cli.RenderScope(sr, report.ProjectionYear))
	}

	if scope == "" {
		fmt.Print(cli.RenderTable(cli.HouseholdTable(report)))
		fmt.Println()
	}
	return nil
}
