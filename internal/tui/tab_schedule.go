package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/flynn/internal/tui/components"
	"github.com/theirongolddev/flynn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderScheduleTab(cw, availH int) string {
	t := theme.Active
	series := a.result.Series
	innerW := components.CardInnerWidth(cw)

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	balStyle := lipgloss.NewStyle().Foreground(t.Balance).Background(t.Surface)
	depStyle := lipgloss.NewStyle().Foreground(t.Deposited).Background(t.Surface)
	earnStyle := lipgloss.NewStyle().Foreground(t.Earnings).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	// Period column is fixed; the three amounts share the rest.
	periodW := 12
	amountW := (innerW - periodW) / 3
	if amountW < 12 {
		amountW = 12
	}

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("%-*s%*s%*s%*s",
		periodW, "Period", amountW, "Balance", amountW, "Deposited", amountW, "Earnings")))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", periodW+3*amountW)))
	b.WriteString("\n")

	// Border, title, header and rule take five rows.
	maxRows := availH - 5
	if maxRows < 1 {
		maxRows = 1
	}
	rows := series
	hidden := 0
	if len(rows) > maxRows {
		// Keep the tail, including the final month.
		hidden = len(rows) - maxRows + 1
		rows = rows[hidden:]
	}
	if hidden > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("… %d earlier rows", hidden)))
		b.WriteString("\n")
	}

	for i, p := range rows {
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", periodW, a.periods.Label(p.Month))))
		b.WriteString(balStyle.Render(fmt.Sprintf("%*s", amountW, a.money.FormatWhole(p.Balance))))
		b.WriteString(depStyle.Render(fmt.Sprintf("%*s", amountW, a.money.Format(p.Contributed))))
		b.WriteString(earnStyle.Render(fmt.Sprintf("%*s", amountW, a.money.FormatWhole(p.Earnings))))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	title := fmt.Sprintf("Schedule · %d samples over %d months", len(series), a.params.HorizonMonths)
	return components.ContentCard(title, b.String(), cw, false)
}
