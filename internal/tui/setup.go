package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/duofin/internal/config"
	"github.com/theirongolddev/duofin/internal/logging"
	"github.com/theirongolddev/duofin/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the first-run wizard answers.
type SetupValues struct {
	ProjectionYear string
	Partner1       string
	Partner2       string
	Theme          string
	LogLevel       string
	Workbook       string
}

// NewSetupValues pre-fills the wizard from cfg.
func NewSetupValues(cfg config.Config) *SetupValues {
	v := &SetupValues{
		Partner1: cfg.General.Partner1Name,
		Partner2: cfg.General.Partner2Name,
		Theme:    cfg.Appearance.Theme,
		LogLevel: cfg.Logging.Level,
		Workbook: cfg.General.Workbook,
	}
	if cfg.General.ProjectionYear > 0 {
		v.ProjectionYear = strconv.Itoa(cfg.General.ProjectionYear)
	}
	if v.Theme == "" {
		v.Theme = theme.FlexokiDark.Name
	}
	if v.LogLevel == "" {
		v.LogLevel = logging.WarnLevel
	}
	return v
}

// NewSetupForm builds the configuration wizard. It is embedded in the
// dashboard on first run and run standalone by `duofin setup`.
func NewSetupForm(v *SetupValues, now time.Time) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to duofin").
				Description("A few questions before the dashboard opens.\nEverything can be changed later with `duofin setup`."),
			huh.NewInput().
				Title("Partner 1 name").
				Placeholder("Partner 1").
				Value(&v.Partner1),
			huh.NewInput().
				Title("Partner 2 name").
				Placeholder("Partner 2").
				Value(&v.Partner2),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Projection year").
				Description(fmt.Sprintf("Leave blank to look %d years ahead.", config.DefaultProjectionHorizon)).
				Placeholder(strconv.Itoa(now.Year()+config.DefaultProjectionHorizon)).
				Value(&v.ProjectionYear).
				Validate(func(s string) error {
					_, err := parseProjectionYear(s, now)
					return err
				}),
			huh.NewInput().
				Title("Workbook file").
				Description("SQLite file that keeps entries between runs. Blank keeps them in memory.").
				Value(&v.Workbook),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("warn", logging.WarnLevel),
					huh.NewOption("info", logging.InfoLevel),
					huh.NewOption("debug", logging.DebugLevel),
					huh.NewOption("error", logging.ErrorLevel),
				).
				Value(&v.LogLevel),
		),
	)
}

// Apply copies the answers into cfg.
func (v *SetupValues) Apply(cfg config.Config, now time.Time) (config.Config, error) {
	year, err := parseProjectionYear(v.ProjectionYear, now)
	if err != nil {
		return cfg, err
	}
	cfg.General.ProjectionYear = year
	cfg.General.Partner1Name = strings.TrimSpace(v.Partner1)
	cfg.General.Partner2Name = strings.TrimSpace(v.Partner2)
	cfg.General.Workbook = strings.TrimSpace(v.Workbook)
	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	if _, err := logging.ParseLevel(v.LogLevel); err != nil {
		return cfg, err
	}
	cfg.Logging.Level = v.LogLevel
	return cfg, nil
}

// parseProjectionYear returns 0 for blank input, meaning "use the default
// horizon".
func parseProjectionYear(s string, now time.Time) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("enter a year like 2036")
	}
	if y < now.Year() {
		return 0, fmt.Errorf("must be %d or later", now.Year())
	}
	return y, nil
}
