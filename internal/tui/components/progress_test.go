package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/duofin/internal/tui/theme"
)

func TestColorForProgress(t *testing.T) {
	th := theme.Active
	cases := []struct {
		pct  float64
		want lipgloss.Color
	}{
		{0, th.Red},
		{0.3, th.Orange},
		{0.75, th.Yellow},
		{1, th.Green},
	}
	for _, tc := range cases {
		if got := ColorForProgress(tc.pct); got != tc.want {
			t.Errorf("ColorForProgress(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestGoalBar(t *testing.T) {
	out := GoalBar("House", 0.5, 8, 20)
	if !strings.Contains(out, "House") || !strings.Contains(out, "50%") {
		t.Fatalf("GoalBar output = %q", out)
	}
	if w := lipgloss.Width(out); w != 8+1+20+1+4 {
		t.Fatalf("GoalBar width = %d, want %d", w, 8+1+20+1+4)
	}

	if out := GoalBar("Car", 2, 8, 20); !strings.Contains(out, "100%") {
		t.Fatalf("GoalBar should clamp above 1: %q", out)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Emergency fund", 6); got != "Emerg…" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("Car", 6); got != "Car" {
		t.Fatalf("truncate = %q", got)
	}
}

func TestHBarChart(t *testing.T) {
	out := HBarChart([]HBar{
		{Label: "Rent", Value: 1500, Text: "$1,500.00"},
		{Label: "Food", Value: 750, Text: "$750.00"},
	}, theme.Active.Accent, 40)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d width = %d, want 40", i, w)
		}
	}
	if strings.Count(lines[0], "█") <= strings.Count(lines[1], "█") {
		t.Fatal("larger value should render a longer bar")
	}
}
