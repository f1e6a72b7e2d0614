package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/flynn/internal/cli"
	"github.com/theirongolddev/flynn/internal/model"
	"github.com/theirongolddev/flynn/internal/projection"
	"github.com/theirongolddev/flynn/internal/tui/theme"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func newTestApp() App {
	return NewApp(Options{
		MonthlyDeposit:     1000,
		MonthlyRatePercent: 1,
		Horizon:            12,
		Unit:               model.UnitMonths,
		Money:              cli.BRL,
	})
}

func send(t *testing.T, a App, msgs ...tea.Msg) App {
	t.Helper()
	var m tea.Model = a
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	app, ok := m.(App)
	require.True(t, ok)
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewAppComputesInitialProjection(t *testing.T) {
	a := newTestApp()

	want, err := projection.Project(model.SimulationParameters{
		MonthlyDeposit: 1000, MonthlyRatePercent: 1, HorizonMonths: 12,
	})
	require.NoError(t, err)

	assert.NoError(t, a.inputErr)
	assert.Equal(t, 12, a.params.HorizonMonths)
	assert.InDelta(t, want.FinalBalance, a.result.FinalBalance, 1e-9)
	assert.Len(t, a.result.Series, 12)
}

func TestTypingRecomputes(t *testing.T) {
	a := newTestApp()
	require.Equal(t, fieldInitial, a.focus)

	a = send(t, a, runes("5"), runes("0"), runes("0"))

	assert.NoError(t, a.inputErr)
	assert.InDelta(t, 500, a.params.InitialAmount, 1e-9)
	assert.Equal(t, "start", a.result.Series[0].Label)
	assert.InDelta(t, 500, a.result.Series[0].Balance, 1e-9)
}

func TestFocusCycles(t *testing.T) {
	a := newTestApp()

	a = send(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldDeposit, a.focus)

	a = send(t, a, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldHorizon, a.focus)
	assert.True(t, a.inputs[fieldHorizon].Focused())
	assert.False(t, a.inputs[fieldInitial].Focused())
}

func TestUnitToggleConvertsHorizon(t *testing.T) {
	a := newTestApp()

	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, model.UnitYears, a.unit)
	assert.Equal(t, 144, a.params.HorizonMonths)
	assert.Len(t, a.result.Series, 24)

	a = send(t, a, tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Equal(t, model.UnitMonths, a.unit)
	assert.Equal(t, 12, a.params.HorizonMonths)
}

func TestInvalidInputKeepsLastResult(t *testing.T) {
	a := newTestApp()

	// "12" -> "1" is still a valid horizon and recomputes.
	a = send(t, a,
		tea.KeyMsg{Type: tea.KeyShiftTab}, // horizon
		tea.KeyMsg{Type: tea.KeyBackspace},
	)
	require.NoError(t, a.inputErr)
	require.Equal(t, 1, a.params.HorizonMonths)
	before := a.result

	a = send(t, a, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "", a.inputs[fieldHorizon].Value())
	assert.Error(t, a.inputErr)
	assert.Equal(t, before, a.result)
	assert.Equal(t, 1, a.params.HorizonMonths)

	a = send(t, a, runes("x"))
	assert.ErrorContains(t, a.inputErr, "horizon")
	assert.Equal(t, before, a.result)

	a = send(t, a, tea.KeyMsg{Type: tea.KeyBackspace}, runes("6"))
	assert.NoError(t, a.inputErr)
	assert.Equal(t, 6, a.params.HorizonMonths)
}

func TestFractionalSeedValuesUseLocaleDecimal(t *testing.T) {
	for _, money := range []cli.Money{cli.BRL, {Symbol: "$", ThousandsSep: ",", DecimalSep: "."}} {
		a := NewApp(Options{
			InitialAmount:      2500.125,
			MonthlyDeposit:     0.5,
			MonthlyRatePercent: 0.125,
			Horizon:            12,
			Money:              money,
		})

		require.NoError(t, a.inputErr, money.Symbol)
		assert.Equal(t, 2500.125, a.params.InitialAmount, money.Symbol)
		assert.Equal(t, 0.5, a.params.MonthlyDeposit, money.Symbol)
		assert.Equal(t, 0.125, a.params.MonthlyRatePercent, money.Symbol)
	}

	a := NewApp(Options{MonthlyRatePercent: 0.125, Horizon: 1, Money: cli.BRL})
	assert.Equal(t, "0,125", a.inputs[fieldRate].Value())
}

func TestOverflowKeepsLastResult(t *testing.T) {
	a := newTestApp()
	before := a.result

	a.inputs[fieldRate].SetValue("100")
	a.inputs[fieldHorizon].SetValue("1200")
	a.recompute()

	assert.ErrorContains(t, a.inputErr, "overflows")
	assert.Equal(t, before, a.result)
	assert.Equal(t, 12, a.params.HorizonMonths)
}

func TestScheduleUsesLocalePeriods(t *testing.T) {
	a := NewApp(Options{
		InitialAmount:  100,
		MonthlyDeposit: 10,
		Horizon:        3,
		Money:          cli.BRL,
		Periods:        projection.Portuguese,
	})
	a = send(t, a, tea.WindowSizeMsg{Width: 120, Height: 40}, tea.KeyMsg{Type: tea.KeyF3})

	view := a.View()
	assert.Contains(t, view, "Início")
	assert.Contains(t, view, "3 meses")
	assert.NotContains(t, view, "start")
}

func TestZeroHorizonIsRejected(t *testing.T) {
	a := newTestApp()
	a.inputs[fieldHorizon].SetValue("0")
	a.recompute()

	assert.Error(t, a.inputErr)
	assert.Equal(t, 12, a.params.HorizonMonths)
}

func TestNegativeAmountsAreClamped(t *testing.T) {
	a := newTestApp()
	a.inputs[fieldDeposit].SetValue("-200")
	a.recompute()

	require.NoError(t, a.inputErr)
	assert.Zero(t, a.params.MonthlyDeposit)
	assert.Zero(t, a.result.FinalBalance)
}

func TestTabsAndHelp(t *testing.T) {
	a := newTestApp()

	a = send(t, a, tea.KeyMsg{Type: tea.KeyF3})
	assert.Equal(t, 1, a.activeTab)
	a = send(t, a, tea.KeyMsg{Type: tea.KeyF2})
	assert.Equal(t, 0, a.activeTab)

	a = send(t, a, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, a.showHelp)
	// Any key closes help without reaching the inputs
	a = send(t, a, runes("9"))
	assert.False(t, a.showHelp)
	assert.Equal(t, "0", a.inputs[fieldInitial].Value())
}

func TestThemeCycle(t *testing.T) {
	prev := theme.Active
	t.Cleanup(func() { theme.Active = prev })

	theme.SetActive(theme.FlexokiDark.Name)
	a := newTestApp()
	send(t, a, tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, theme.CatppuccinMocha.Name, theme.Active.Name)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := newTestApp().Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestViewFitsWindow(t *testing.T) {
	a := newTestApp()
	assert.Empty(t, a.View())

	a = send(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	for _, tab := range []tea.KeyType{tea.KeyF2, tea.KeyF3} {
		a = send(t, a, tea.KeyMsg{Type: tab})
		view := a.View()
		assert.Equal(t, 40, lipgloss.Height(view))
		assert.Contains(t, view, "Final balance")
		assert.Contains(t, view, "R$")
	}

	a = send(t, a, tea.WindowSizeMsg{Width: 60, Height: 20})
	assert.True(t, strings.Contains(a.View(), "too narrow"))
}
