package components

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/duofin/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar. Tabs are selected with the
// number keys 1..n in display order.
type Tab struct {
	Name string
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(tabs []Tab, activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, 1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tab.Name)
		} else {
			parts[i] = inactiveStyle.Render(tab.Name + keyStyle.Render(tabKeyHint(i)))
		}
	}

	bar := strings.Join(parts, " ")
	return lipgloss.NewStyle().Width(width).Render(bar)
}

// TabVisualWidth returns the rendered width of a tab, matching RenderTabBar.
func TabVisualWidth(tabs []Tab, idx int, active bool) int {
	w := lipgloss.Width(tabs[idx].Name) + 2
	if !active {
		w += len(tabKeyHint(idx))
	}
	return w
}

// TabAtX returns the tab index at column x, or -1 if none.
func TabAtX(tabs []Tab, activeIdx, x int) int {
	pos := 0
	for i := range tabs {
		w := TabVisualWidth(tabs, i, i == activeIdx)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w
		if i < len(tabs)-1 {
			pos++ // separator
		}
	}
	return -1
}

// TabIdxByKey maps the number keys 1..n to tab indexes, or -1.
func TabIdxByKey(tabs []Tab, key string) int {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > len(tabs) {
		return -1
	}
	return n - 1
}

func tabKeyHint(idx int) string {
	return "[" + strconv.Itoa(idx+1) + "]"
}
