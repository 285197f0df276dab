package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/duofin/internal/logging"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Exists() {
		t.Fatal("Exists() = true in an empty config dir")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.ProjectionYear = 2040
	cfg.General.Partner1Name = "Sam"
	cfg.General.Partner2Name = "Alex"
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Logging.Development = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestProjectionYear(t *testing.T) {
	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)

	t.Setenv("DUOFIN_PROJECTION_YEAR", "")
	if got := ProjectionYear(DefaultConfig(), now); got != 2036 {
		t.Fatalf("default ProjectionYear = %d, want 2036", got)
	}

	cfg := DefaultConfig()
	cfg.General.ProjectionYear = 2045
	if got := ProjectionYear(cfg, now); got != 2045 {
		t.Fatalf("configured ProjectionYear = %d, want 2045", got)
	}

	t.Setenv("DUOFIN_PROJECTION_YEAR", "2050")
	if got := ProjectionYear(cfg, now); got != 2050 {
		t.Fatalf("env ProjectionYear = %d, want 2050", got)
	}

	t.Setenv("DUOFIN_PROJECTION_YEAR", "soon")
	if got := ProjectionYear(cfg, now); got != 2045 {
		t.Fatalf("bad env ProjectionYear = %d, want config fallback 2045", got)
	}
}

func TestProjectionYear_BadEnvIsLogged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duofin.log")
	if err := logging.Init(false, logging.WarnLevel, path); err != nil {
		t.Fatalf("logging.Init: %v", err)
	}
	t.Cleanup(func() { _ = logging.Init(false, logging.ErrorLevel, os.DevNull) })

	t.Setenv("DUOFIN_PROJECTION_YEAR", "soon")
	now := time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	if got := ProjectionYear(DefaultConfig(), now); got != 2036 {
		t.Fatalf("ProjectionYear = %d, want default 2036", got)
	}
	_ = logging.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "ignoring DUOFIN_PROJECTION_YEAR") || !strings.Contains(string(data), "soon") {
		t.Fatalf("log missing warning: %s", data)
	}

	_, set, err := EnvProjectionYear()
	if !set || err == nil {
		t.Fatalf("EnvProjectionYear() set=%v err=%v, want set with error", set, err)
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("DUOFIN_PROJECTION_YEAR=2044\nDUOFIN_WORKBOOK=/tmp/set-already.db\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("DUOFIN_PROJECTION_YEAR", "")
	_ = os.Unsetenv("DUOFIN_PROJECTION_YEAR")
	t.Setenv("DUOFIN_WORKBOOK", "/tmp/from-shell.db")

	if err := LoadEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadEnv() error: %v", err)
	}

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := ProjectionYear(DefaultConfig(), now); got != 2044 {
		t.Fatalf("ProjectionYear = %d, want 2044 from .env", got)
	}
	if got := Workbook(DefaultConfig()); got != "/tmp/from-shell.db" {
		t.Fatalf("Workbook = %q, shell value should win", got)
	}
}

func TestWorkbook_FromConfig(t *testing.T) {
	t.Setenv("DUOFIN_WORKBOOK", "")
	cfg := DefaultConfig()
	cfg.General.Workbook = "/data/duofin.db"
	if got := Workbook(cfg); got != "/data/duofin.db" {
		t.Fatalf("Workbook = %q", got)
	}
}
