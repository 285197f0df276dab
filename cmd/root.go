package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/duofin/internal/config"
	"github.com/theirongolddev/duofin/internal/logging"
	"github.com/theirongolddev/duofin/internal/model"
	"github.com/theirongolddev/duofin/internal/pipeline"
	"github.com/theirongolddev/duofin/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagYear     int
	flagFile     string
	flagWorkbook string
	flagQuiet    bool
	flagLogLevel string
)

// appConfig is loaded once before any command runs.
var appConfig = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "duofin",
	Short: "Personal finance questionnaire for couples",
	Long: "Enter accounts, debts, goals, income and expenses for each partner and the\n" +
		"joint household, then see remaining funds, goal progress, debt payoff dates\n" +
		"and projected balances.",
	RunE: runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	err := rootCmd.Execute()
	_ = logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = initApp

	rootCmd.PersistentFlags().IntVarP(&flagYear, "year", "y", 0, "Projection year (default: config, or 10 years ahead)")
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Load a household questionnaire from YAML")
	rootCmd.PersistentFlags().StringVarP(&flagWorkbook, "workbook", "w", "", "SQLite workbook that keeps entries between runs (default: in memory)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// initApp loads the config file and starts the logger.
func initApp(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	appConfig = cfg

	level := cfg.Logging.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}

	// The dashboard owns the terminal, so its logs go to a file.
	var outputs []string
	if isInteractive(cmd) {
		if err := os.MkdirAll(config.Dir(), 0o755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
		outputs = []string{filepath.Join(config.Dir(), "duofin.log")}
	}

	if err := logging.Init(cfg.Logging.Development, level, outputs...); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	logging.Get().Debug("config loaded",
		zap.String("path", config.Path()),
		zap.Bool("exists", config.Exists()))
	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd == rootCmd || cmd == tuiCmd
}

// projectionYear resolves --year, the config file and the default horizon.
func projectionYear(now time.Time) (int, error) {
	year := flagYear
	if year == 0 {
		year = config.ProjectionYear(appConfig, now)
	}
	if err := pipeline.ValidateProjectionYear(year, now); err != nil {
		return 0, err
	}
	return year, nil
}

// openWorkbook opens the entry store, seeds it from --file when given and
// fills in partner names from the config.
func openWorkbook(now time.Time) (*store.Store, error) {
	path := flagWorkbook
	if path == "" {
		path = config.Workbook(appConfig)
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	log := logging.Get()
	log.Debug("workbook opened", zap.String("path", path))

	if flagFile != "" {
		h, err := pipeline.LoadFile(flagFile, now)
		if err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("loading household: %w", err)
		}
		if err := st.ReplaceHousehold(h); err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("storing household: %w", err)
		}
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Loaded household from %s\n", flagFile)
		}
		log.Info("household loaded", zap.String("file", flagFile))
	}

	h, err := st.LoadHousehold()
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	names := map[model.Scope][2]string{
		model.ScopePartner1: {h.Partner1Name, appConfig.General.Partner1Name},
		model.ScopePartner2: {h.Partner2Name, appConfig.General.Partner2Name},
	}
	for scope, n := range names {
		if n[0] == "" && n[1] != "" {
			if err := st.SetPartnerName(scope, n[1]); err != nil {
				_ = st.Close()
				return nil, err
			}
		}
	}

	return st, nil
}

// loadReport opens the workbook, validates it and evaluates the household.
func loadReport(now time.Time) (model.HouseholdReport, error) {
	year, err := projectionYear(now)
	if err != nil {
		return model.HouseholdReport{}, err
	}

	st, err := openWorkbook(now)
	if err != nil {
		return model.HouseholdReport{}, err
	}
	defer st.Close()

	h, err := st.LoadHousehold()
	if err != nil {
		return model.HouseholdReport{}, err
	}
	if err := pipeline.Validate(h); err != nil {
		return model.HouseholdReport{}, err
	}

	return pipeline.Evaluate(h, pipeline.Options{ProjectionYear: year, Now: now}), nil
}
