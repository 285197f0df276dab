// Package tui provides the interactive Bubble Tea dashboard for duofin.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/duofin/internal/config"
	"github.com/theirongolddev/duofin/internal/logging"
	"github.com/theirongolddev/duofin/internal/model"
	"github.com/theirongolddev/duofin/internal/pipeline"
	"github.com/theirongolddev/duofin/internal/store"
	"github.com/theirongolddev/duofin/internal/tui/components"
	"github.com/theirongolddev/duofin/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// householdTab is the index of the combined view, after the three scopes.
const householdTab = 3

const (
	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 160
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	store          *store.Store
	household      model.Household
	report         model.HouseholdReport
	projectionYear int
	now            func() time.Time

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	status    string
	statusErr bool

	// Open entry form
	form      *huh.Form
	formKind  entryKind
	formScope model.Scope
	entry     *entryValues

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
}

// NewApp creates the dashboard over an open entry store.
func NewApp(st *store.Store, projectionYear int, needSetup bool) (App, error) {
	a := App{
		store:          st,
		projectionYear: projectionYear,
		now:            time.Now,
		needSetup:      needSetup,
	}
	if err := a.reload(); err != nil {
		return a, err
	}
	return a, nil
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// reload reads the household back from the store and re-evaluates it.
func (a *App) reload() error {
	h, err := a.store.LoadHousehold()
	if err != nil {
		return fmt.Errorf("loading entries: %w", err)
	}
	a.household = h
	a.recompute()
	return nil
}

func (a *App) recompute() {
	a.report = pipeline.Evaluate(a.household, pipeline.Options{
		ProjectionYear: a.projectionYear,
		Now:            a.now(),
	})
}

func (a App) tabs() []components.Tab {
	tabs := make([]components.Tab, 0, len(model.Scopes)+1)
	for _, s := range model.Scopes {
		tabs = append(tabs, components.Tab{Name: a.household.ScopeLabel(s)})
	}
	return append(tabs, components.Tab{Name: "Household"})
}

// activeScope returns the scope shown on the active tab.
func (a App) activeScope() (model.Scope, bool) {
	if a.activeTab < 0 || a.activeTab >= len(model.Scopes) {
		return "", false
	}
	return model.Scopes[a.activeTab], true
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth())
		}
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.needSetup && a.setupForm == nil {
			return a.startSetup()
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.setupForm != nil || a.showHelp {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := components.TabAtX(a.tabs(), a.activeTab, msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.form != nil {
			if key == "esc" {
				a.closeForm()
				a.setStatus("entry cancelled", false)
				return a, nil
			}
			return a.updateEntryForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if idx := components.TabIdxByKey(a.tabs(), key); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "left", "shift+tab", "h":
			a.activeTab = (a.activeTab - 1 + len(a.tabs())) % len(a.tabs())
		case "right", "tab", "l":
			a.activeTab = (a.activeTab + 1) % len(a.tabs())
		case "+", "=":
			a.projectionYear++
			a.recompute()
			a.setStatus(fmt.Sprintf("projecting to %d", a.projectionYear), false)
		case "-", "_":
			next := a.projectionYear - 1
			if err := pipeline.ValidateProjectionYear(next, a.now()); err != nil {
				a.setStatus(fmt.Sprintf("projection year cannot go before %d", a.now().Year()), true)
				return a, nil
			}
			a.projectionYear = next
			a.recompute()
			a.setStatus(fmt.Sprintf("projecting to %d", a.projectionYear), false)
		case "a":
			return a.openForm(entryAccount)
		case "d":
			return a.openForm(entryDebt)
		case "g":
			return a.openForm(entryGoal)
		case "i":
			return a.openForm(entryTotals)
		case "e":
			return a.openForm(entryExpense)
		case "p":
			return a.openForm(entryAllocation)
		case "s":
			return a.openForm(entryAsset)
		case "n":
			return a.openForm(entryName)
		}
		return a, nil
	}

	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.form != nil {
		return a.updateEntryForm(msg)
	}
	return a, nil
}

func (a App) openForm(kind entryKind) (tea.Model, tea.Cmd) {
	scope, ok := a.activeScope()
	if !ok {
		a.setStatus("switch to a partner or joint tab to add entries", true)
		return a, nil
	}
	if kind == entryName && scope == model.ScopeJoint {
		a.setStatus("only partners have display names", true)
		return a, nil
	}

	f := a.household.Scope(scope)
	accounts := make([]string, len(f.Accounts))
	for i, acc := range f.Accounts {
		accounts[i] = acc.Name
	}

	a.entry = newEntryValues(kind, f, a.now())
	a.formKind = kind
	a.formScope = scope
	a.form = newEntryForm(kind, a.household.ScopeLabel(scope), a.entry, accounts, a.now()).
		WithWidth(a.formWidth())
	return a, a.form.Init()
}

func (a *App) closeForm() {
	a.form = nil
	a.entry = nil
}

func (a App) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind, scope, vals := a.formKind, a.formScope, a.entry
		a.closeForm()

		if err := submitEntry(a.store, a.household, scope, kind, vals, a.now()); err != nil {
			logging.Get().Warn("entry rejected",
				zap.String("scope", string(scope)),
				zap.Stringer("kind", kind),
				zap.Error(err))
			a.setStatus(firstLine(err.Error()), true)
			return a, nil
		}
		if err := a.reload(); err != nil {
			a.setStatus(err.Error(), true)
			return a, nil
		}
		logging.Get().Debug("entry saved",
			zap.String("scope", string(scope)),
			zap.Stringer("kind", kind))
		a.setStatus(fmt.Sprintf("saved %s", kind), false)
		return a, nil

	case huh.StateAborted:
		a.closeForm()
		a.setStatus("entry cancelled", false)
		return a, nil
	}

	return a, cmd
}

func (a App) startSetup() (tea.Model, tea.Cmd) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	a.setupVals = NewSetupValues(cfg)
	a.setupForm = NewSetupForm(a.setupVals, a.now()).
		WithWidth(a.width).
		WithHeight(a.height)
	return a, a.setupForm.Init()
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.saveSetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// saveSetup writes the wizard answers to the config file and applies the
// ones that affect the running dashboard.
func (a *App) saveSetup() {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	cfg, err = a.setupVals.Apply(cfg, a.now())
	if err != nil {
		a.setStatus(err.Error(), true)
		return
	}

	theme.SetActive(cfg.Appearance.Theme)
	a.projectionYear = config.ProjectionYear(cfg, a.now())
	for scope, name := range map[model.Scope]string{
		model.ScopePartner1: cfg.General.Partner1Name,
		model.ScopePartner2: cfg.General.Partner2Name,
	} {
		if name == "" {
			continue
		}
		if err := a.store.SetPartnerName(scope, name); err != nil {
			logging.Get().Warn("saving partner name", zap.Error(err))
		}
	}
	if err := a.reload(); err != nil {
		a.setStatus(err.Error(), true)
		return
	}

	if err := config.Save(cfg); err != nil {
		a.setStatus(fmt.Sprintf("could not save config: %s", err), true)
		return
	}
	a.setStatus("saved "+config.Path(), false)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) formWidth() int {
	w := a.contentWidth() - 4
	if w > 70 {
		w = 70
	}
	if w < 30 {
		w = 30
	}
	return w
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  duofin needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1 2 3 4", "Jump to tab"},
			{"← → tab", "Previous / Next tab"},
			{"+ -", "Projection year"},
		}},
		{"Entries", []struct{ key, desc string }{
			{"a", "Add account"},
			{"d", "Add debt"},
			{"g", "Add goal"},
			{"i", "Income & expense totals"},
			{"e", "Expense category"},
			{"p", "Allocation percent"},
			{"s", "Other asset"},
			{"n", "Partner name"},
		}},
		{"General", []struct{ key, desc string }{
			{"esc", "Cancel entry"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Re-entering a name replaces the old entry. Press any key to close."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	yearStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	yearAccent := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	header := components.RenderTabBar(a.tabs(), a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Width(w).Render(
			yearStyle.Render(" projected to ")+yearAccent.Render(fmt.Sprintf("%d", a.projectionYear)))

	hints := "[?]help  [q]uit  [a]ccount [d]ebt [g]oal [i]ncome"
	if a.form != nil {
		hints = "[enter]next  [esc]cancel"
	}
	statusBar := components.RenderStatusBar(w, hints, a.status, a.statusErr)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.form != nil:
		content = components.ContentCard("", a.form.View(), a.formWidth()+4)
	case a.activeTab == householdTab:
		content = a.renderHouseholdTab(cw)
	default:
		content = a.renderScopeTab(model.Scopes[a.activeTab], cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= h {
		return s
	}
	return s + strings.Repeat("\n", h-lines)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
