package components

import (
	"strings"

	"github.com/theirongolddev/flynn/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  string // key binding shown next to the name
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Growth", Key: "f2"},
	{Name: "Schedule", Key: "f3"},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	parts := make([]string, 0, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name)+keyStyle.Render("["+tab.Key+"]"))
		} else {
			parts = append(parts, inactiveStyle.Render(tab.Name)+keyStyle.Render("["+tab.Key+"]"))
		}
	}

	row := strings.Join(parts, keyStyle.Render("  "))
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(row)
}

// TabIdxByKey returns the tab index for a key binding, or -1.
func TabIdxByKey(key string) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
