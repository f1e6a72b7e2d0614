package cmd

import (
	"fmt"

	"github.com/theirongolddev/flynn/internal/config"
	"github.com/theirongolddev/flynn/internal/model"
	"github.com/theirongolddev/flynn/internal/projection"
	"github.com/theirongolddev/flynn/internal/tui"
	"github.com/theirongolddev/flynn/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive calculator",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	addParamFlags(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg := loadConfigOrDefault(cmd.Context())
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	if !flagNoColor {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}

	opts, err := tuiOptions(cmd, cfg)
	if err != nil {
		return err
	}

	zerolog.Ctx(cmd.Context()).Debug().Str("theme", theme.Active.Name).Msg("starting tui")

	p := tea.NewProgram(tui.NewApp(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// tuiOptions seeds the calculator like resolveParams does for `project`,
// but keeps the horizon in the unit the user chose so it can be toggled.
func tuiOptions(cmd *cobra.Command, cfg config.Config) (tui.Options, error) {
	d := cfg.Defaults
	flags := cmd.Flags()

	unit, err := model.ParseHorizonUnit(d.HorizonUnit)
	if err != nil {
		return tui.Options{}, err
	}
	opts := tui.Options{
		InitialAmount:      d.InitialAmount,
		MonthlyDeposit:     d.MonthlyDeposit,
		MonthlyRatePercent: d.MonthlyRatePercent,
		Horizon:            d.Horizon,
		Unit:               unit,
		Money:              moneyFor(cfg),
		Periods:            projection.PeriodsFor(cfg.Display.Language),
		Compact:            flagCompact || cfg.Display.Compact,
	}
	if flags.Changed("initial") {
		opts.InitialAmount = flagInitial
	}
	if flags.Changed("deposit") {
		opts.MonthlyDeposit = flagDeposit
	}
	if flags.Changed("rate") {
		opts.MonthlyRatePercent = flagRate
	}
	switch {
	case flags.Changed("months"):
		opts.Horizon, opts.Unit = flagMonths, model.UnitMonths
	case flags.Changed("years"):
		opts.Horizon, opts.Unit = flagYears, model.UnitYears
	}
	return opts, nil
}
