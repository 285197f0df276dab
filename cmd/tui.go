package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/duofin/internal/config"
	"github.com/theirongolddev/duofin/internal/tui"
	"github.com/theirongolddev/duofin/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	now := time.Now()
	theme.SetActive(appConfig.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	year, err := projectionYear(now)
	if err != nil {
		return err
	}

	st, err := openWorkbook(now)
	if err != nil {
		return err
	}
	defer st.Close()

	app, err := tui.NewApp(st, year, !config.Exists())
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
