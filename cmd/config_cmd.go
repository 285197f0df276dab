// Package cmd implements the duofin CLI commands.
package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/duofin/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appConfig

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	_, envSet, envErr := config.EnvProjectionYear()
	if envErr != nil {
		fmt.Printf("    DUOFIN_PROJECTION_YEAR: invalid (%s), ignored\n", envErr)
	}
	year, err := projectionYear(time.Now())
	if err != nil {
		fmt.Printf("    Projection year: invalid (%s)\n", err)
	} else {
		source := "default horizon"
		switch {
		case flagYear != 0:
			source = "--year"
		case envSet && envErr == nil:
			source = "DUOFIN_PROJECTION_YEAR"
		case cfg.General.ProjectionYear > 0:
			source = "config"
		}
		fmt.Printf("    Projection year: %d (%s)\n", year, source)
	}
	fmt.Printf("    Partner 1:       %s\n", orDefault(cfg.General.Partner1Name, "Partner 1"))
	fmt.Printf("    Partner 2:       %s\n", orDefault(cfg.General.Partner2Name, "Partner 2"))
	fmt.Printf("    Workbook:        %s\n", orDefault(config.Workbook(cfg), "in memory"))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level:       %s\n", cfg.Logging.Level)
	fmt.Printf("    Development: %v\n", cfg.Logging.Development)
	fmt.Println()

	fmt.Println("  Run `duofin setup` to reconfigure.")
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
