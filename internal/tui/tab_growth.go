package tui

import (
	"strings"

	"github.com/theirongolddev/flynn/internal/tui/components"
	"github.com/theirongolddev/flynn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderGrowthTab(cw, availH int) string {
	t := theme.Active
	r := a.result
	if len(r.Series) == 0 {
		return ""
	}

	innerW := components.CardInnerWidth(cw)

	// Card chrome (border, title) plus the legend and share rows.
	chartH := availH - 8
	if chartH > 16 {
		chartH = 16
	}
	if chartH < 3 {
		chartH = 3
	}

	legendStyle := lipgloss.NewStyle().Background(t.Surface)
	dep := lipgloss.NewStyle().Foreground(t.Deposited).Background(t.Surface).Render("█ deposited")
	earn := lipgloss.NewStyle().Foreground(t.Earnings).Background(t.Surface).Render("█ earnings")
	spark := components.Sparkline(r.Balances(), t.Balance)

	var b strings.Builder
	b.WriteString(components.GrowthChart(r.Contributions(), r.Balances(), a.periods.Labels(r), innerW, chartH))
	b.WriteString("\n\n")
	b.WriteString(dep + legendStyle.Render("   ") + earn + legendStyle.Render("   ") + spark)
	b.WriteString("\n")
	b.WriteString(components.ShareBar("Earnings share", r.EarningsShare(), 15, innerW-23))

	return components.ContentCard("Balance growth", b.String(), cw, false)
}
