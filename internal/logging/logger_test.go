package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
		ok   bool
	}{
		{"debug", zapcore.DebugLevel, true},
		{"INFO", zapcore.InfoLevel, true},
		{"", zapcore.WarnLevel, true},
		{" error ", zapcore.ErrorLevel, true},
		{"verbose", zapcore.WarnLevel, false},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseLevel(%q) err = %v, want ok=%v", tc.in, err, tc.ok)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestGetBeforeInitIsUsable(t *testing.T) {
	if Get() == nil {
		t.Fatal("Get() returned nil before Init")
	}
	Get().Info("no-op logger accepts writes")
}

func TestInitWritesToFile(t *testing.T) {
	defer func() { log = zap.NewNop() }()

	path := filepath.Join(t.TempDir(), "duofin.log")
	if err := Init(false, "info", path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Get().Info("entry saved", zap.String("scope", "joint"))
	_ = Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), `"scope":"joint"`) {
		t.Fatalf("log file missing field: %s", data)
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	if err := Init(false, "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
