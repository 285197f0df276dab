package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/duofin/internal/config"
	"github.com/theirongolddev/duofin/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configuration wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	now := time.Now()
	cfg := appConfig

	vals := tui.NewSetupValues(cfg)
	if err := tui.NewSetupForm(vals, now).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return err
	}

	cfg, err := vals.Apply(cfg, now)
	if err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `duofin setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
