// Package tui provides the interactive Bubble Tea calculator for flynn.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/flynn/internal/cli"
	"github.com/theirongolddev/flynn/internal/model"
	"github.com/theirongolddev/flynn/internal/projection"
	"github.com/theirongolddev/flynn/internal/tui/components"
	"github.com/theirongolddev/flynn/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Input fields, in focus order.
const (
	fieldInitial = iota
	fieldDeposit
	fieldRate
	fieldHorizon
	fieldCount
)

const (
	minTerminalWidth = 80
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5
)

// Options seeds the calculator. Values usually come from the config
// defaults with command-line flags applied on top.
type Options struct {
	InitialAmount      float64
	MonthlyDeposit     float64
	MonthlyRatePercent float64
	Horizon            int
	Unit               model.HorizonUnit
	Money              cli.Money
	Periods            projection.Periods // zero value means English
	Compact            bool
}

// App is the root Bubble Tea model.
type App struct {
	inputs []textinput.Model
	focus  int
	unit   model.HorizonUnit

	// Last successful projection; kept on screen while the inputs are invalid.
	memo     *projection.Memo
	params   model.SimulationParameters
	result   model.ProjectionResult
	inputErr error

	money   cli.Money
	periods projection.Periods
	compact bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
}

// NewApp creates a calculator with its fields filled from opts and the
// first projection already computed.
func NewApp(opts Options) App {
	unit := opts.Unit
	if unit == "" {
		unit = model.UnitMonths
	}

	a := App{
		inputs:  make([]textinput.Model, fieldCount),
		unit:    unit,
		memo:    projection.NewMemo(projection.DefaultMemoSize),
		money:   opts.Money,
		periods: opts.Periods,
		compact: opts.Compact,
	}

	values := []string{
		fieldInitial: opts.Money.Editable(opts.InitialAmount),
		fieldDeposit: opts.Money.Editable(opts.MonthlyDeposit),
		fieldRate:    opts.Money.Editable(opts.MonthlyRatePercent),
		fieldHorizon: strconv.Itoa(opts.Horizon),
	}
	for i := range a.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 18
		ti.Width = 16
		ti.SetValue(values[i])
		a.inputs[i] = ti
	}
	a.inputs[fieldInitial].Placeholder = "0"
	a.inputs[fieldHorizon].CharLimit = 4
	a.inputs[a.focus].Focus()

	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// recompute reads the fields and refreshes the projection. Invalid input
// leaves the previous result in place and records the error for display.
func (a *App) recompute() {
	p, err := a.readParams()
	if err != nil {
		a.inputErr = err
		return
	}
	res, err := a.memo.Project(p)
	if err != nil {
		a.inputErr = err
		return
	}
	if !res.Finite() {
		a.inputErr = fmt.Errorf("balance overflows at %s over %s", cli.FormatRate(p.MonthlyRatePercent), cli.FormatHorizon(p.HorizonMonths))
		return
	}
	a.params = p
	a.result = res
	a.inputErr = nil
}

func (a App) readParams() (model.SimulationParameters, error) {
	initial, err := a.money.Parse(a.inputs[fieldInitial].Value())
	if err != nil {
		return model.SimulationParameters{}, fmt.Errorf("initial amount: %w", err)
	}
	deposit, err := a.money.Parse(a.inputs[fieldDeposit].Value())
	if err != nil {
		return model.SimulationParameters{}, fmt.Errorf("monthly deposit: %w", err)
	}
	rate, err := a.money.Parse(a.inputs[fieldRate].Value())
	if err != nil {
		return model.SimulationParameters{}, fmt.Errorf("monthly rate: %w", err)
	}

	raw := strings.TrimSpace(a.inputs[fieldHorizon].Value())
	if raw == "" {
		return model.SimulationParameters{}, fmt.Errorf("horizon is required")
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return model.SimulationParameters{}, fmt.Errorf("horizon: %q is not a whole number", raw)
	}
	months, err := model.HorizonMonths(value, a.unit)
	if err != nil {
		return model.SimulationParameters{}, err
	}

	return model.ClampParameters(model.SimulationParameters{
		InitialAmount:      initial,
		MonthlyDeposit:     deposit,
		MonthlyRatePercent: rate,
		HorizonMonths:      months,
	}), nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Any key dismisses help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "esc":
			return a, tea.Quit
		case "f1", "?":
			a.showHelp = true
			return a, nil
		case "tab", "down", "enter":
			return a, a.setFocus((a.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return a, a.setFocus((a.focus + fieldCount - 1) % fieldCount)
		case "ctrl+u":
			a.unit = a.unit.Toggle()
			a.recompute()
			return a, nil
		case "ctrl+t":
			theme.Active = theme.Next(theme.Active.Name)
			return a, nil
		}

		if idx := components.TabIdxByKey(key); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}

		return a.updateFocusedInput(msg)
	}

	// Cursor blinks and other messages go to the focused field
	return a.updateFocusedInput(msg)
}

func (a App) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := a.inputs[a.focus].Value()
	var cmd tea.Cmd
	a.inputs[a.focus], cmd = a.inputs[a.focus].Update(msg)
	if a.inputs[a.focus].Value() != before {
		a.recompute()
	}
	return a, cmd
}

func (a *App) setFocus(idx int) tea.Cmd {
	a.inputs[a.focus].Blur()
	a.focus = idx
	return a.inputs[a.focus].Focus()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.compact || a.contentWidth() < compactWidth
}

func (a App) formatMoney(v float64) string {
	if a.isCompactLayout() {
		return a.money.FormatCompact(v)
	}
	return a.money.Format(v)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
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
		"\n  Terminal too narrow (%d cols)\n\n  flynn needs at least %d columns.\n",
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
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"tab ↓ enter", "Next field"},
		{"shift+tab ↑", "Previous field"},
		{"f2 f3", "Growth / Schedule tab"},
		{"ctrl+u", "Horizon in months or years"},
		{"ctrl+t", "Cycle color theme"},
		{"f1 ?", "Toggle help"},
		{"esc ctrl+c", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Amounts accept 1.234,56 or 1234.56. Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	titleRow := lipgloss.NewStyle().Background(t.Surface).Width(w).
		Render(titleStyle.Render(" ◈ flynn") + subtitleStyle.Render(" · compound savings projection"))

	header := titleRow + "\n" + components.RenderTabBar(a.activeTab, w)

	hits, misses := a.memo.Stats()
	statusBar := components.RenderStatusBar(w, t.Name, hits, misses)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var b strings.Builder
	b.WriteString(a.renderInputs(cw))
	b.WriteString("\n")
	if a.inputErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Error).Background(t.Background)
		b.WriteString(errStyle.Render(" ✗ " + a.inputErr.Error() + " (showing last valid projection)"))
		b.WriteString("\n")
	}
	b.WriteString(a.renderMetrics(cw))
	b.WriteString("\n")

	remaining := contentH - lipgloss.Height(b.String())
	switch a.activeTab {
	case 0:
		b.WriteString(a.renderGrowthTab(cw, remaining))
	case 1:
		b.WriteString(a.renderScheduleTab(cw, remaining))
	}

	content := padHeight(truncateHeight(b.String(), contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) renderInputs(cw int) string {
	horizonTitle := "Horizon (" + string(a.unit) + ")"
	titles := []string{
		fieldInitial: "Initial amount",
		fieldDeposit: "Monthly deposit",
		fieldRate:    "Monthly rate %",
		fieldHorizon: horizonTitle,
	}

	widths := components.LayoutRow(cw, fieldCount)
	cards := make([]string, fieldCount)
	for i := range a.inputs {
		in := a.inputs[i]
		in.Width = components.CardInnerWidth(widths[i]) - 1
		cards[i] = components.ContentCard(titles[i], in.View(), widths[i], i == a.focus)
	}
	return components.CardRow(cards)
}

func (a App) renderMetrics(cw int) string {
	t := theme.Active
	r := a.result

	return components.MetricCardRow([]components.Metric{
		{Label: "Final balance", Value: a.formatMoney(r.FinalBalance), Color: t.Balance,
			Note: cli.FormatHorizon(a.params.HorizonMonths)},
		{Label: "Total deposited", Value: a.formatMoney(r.TotalContributed), Color: t.Deposited},
		{Label: "Total earnings", Value: a.formatMoney(r.TotalEarnings), Color: t.Earnings,
			Note: cli.FormatPercent(r.EarningsShare()) + " of balance"},
	}, cw)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
