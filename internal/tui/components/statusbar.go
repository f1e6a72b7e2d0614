package components

import (
	"fmt"

	"github.com/theirongolddev/flynn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the active theme plus recompute cache stats on the right.
func RenderStatusBar(width int, themeName string, hits, misses int) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [tab]next field  [^u]months/years  [^t]theme  [f1]help  [esc]quit"
	right := fmt.Sprintf("%s · cache %d/%d ", themeName, hits, hits+misses)

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// too narrow for both halves; keep the hints
		return style.Render(left)
	}

	return style.Render(left + fmt.Sprintf("%*s", padding, "") + right)
}
