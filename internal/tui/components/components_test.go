package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/flynn/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(80, 3)
	if len(widths) != 3 {
		t.Fatalf("got %d widths, want 3", len(widths))
	}
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 80 {
		t.Errorf("widths sum to %d, want 80", sum)
	}
	if widths[0] != 27 || widths[2] != 26 {
		t.Errorf("remainder should go to first items, got %v", widths)
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should return nil")
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")

	row := MetricCardRow([]Metric{
		{Label: "Final balance", Value: "R$ 12.682,50", Color: theme.Active.Balance},
		{Label: "Deposited", Value: "R$ 12.000,00"},
		{Label: "Earnings", Value: "R$ 682,50", Note: "5.4% of balance"},
	}, 90)

	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
	if !strings.Contains(row, "R$ 682,50") {
		t.Error("row missing earnings value")
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22, false)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22, true)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("Test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("Joined height should match tallest card: got %d, want %d", got, tallLines)
	}
}

func TestGrowthChart(t *testing.T) {
	theme.SetActive("terminal")
	defer theme.SetActive("flexoki-dark")

	deposited := []float64{1000, 2000, 3000, 4000}
	balance := []float64{1010, 2030, 3060, 4101}
	labels := []string{"1 month", "2 months", "3 months", "4 months"}

	out := GrowthChart(deposited, balance, labels, 60, 10)
	lines := strings.Split(out, "\n")
	if len(lines) < 4 {
		t.Fatalf("chart too short: %d lines", len(lines))
	}
	if !strings.Contains(out, "└") {
		t.Error("chart missing x-axis")
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last, "4 months") {
		t.Errorf("last label missing from axis: %q", last)
	}

	if GrowthChart(nil, nil, nil, 60, 10) != "" {
		t.Error("empty series should render nothing")
	}
	if GrowthChart([]float64{1}, []float64{1, 2}, nil, 60, 10) != "" {
		t.Error("mismatched series should render nothing")
	}
	if got := GrowthChart(deposited, balance, labels, 10, 2); strings.Contains(got, "\n") {
		t.Errorf("tiny chart should fall back to a sparkline, got %q", got)
	}
}

func TestAxisLabelsKeepsLast(t *testing.T) {
	got := axisLabels([]string{"1 month", "2 months", "3 months"}, 2, 1, 9)
	if !strings.HasSuffix(got, "3 months") {
		t.Errorf("axisLabels = %q, want it to end with the last label", got)
	}
	if strings.Contains(got, "2 months") {
		t.Errorf("overlapping label should be dropped: %q", got)
	}
}

func TestChartTickStep(t *testing.T) {
	tests := map[float64]float64{
		0:      1,
		10:     2,
		100:    20,
		1000:   200,
		4500:   500,
		250000: 50000,
	}
	for in, want := range tests {
		if got := chartTickStep(in); got != want {
			t.Errorf("chartTickStep(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if TabIdxByKey("f2") != 0 || TabIdxByKey("f3") != 1 {
		t.Error("tab keys should map to Growth and Schedule")
	}
	if TabIdxByKey("x") != -1 {
		t.Error("unknown key should return -1")
	}
}
