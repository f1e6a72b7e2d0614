package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/flynn/internal/cli"
	"github.com/theirongolddev/flynn/internal/config"
	"github.com/theirongolddev/flynn/internal/model"
	"github.com/theirongolddev/flynn/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// locale is a preset for the [display] section.
type locale struct {
	Name     string
	Language string
	Money    cli.Money
}

var locales = []locale{
	{"pt-BR (R$ 1.234,56, 3 meses)", "pt-BR", cli.BRL},
	{"en-US ($ 1,234.56, 3 months)", "en-US", cli.Money{Symbol: "$", ThousandsSep: ",", DecimalSep: "."}},
	{"de-DE (€ 1.234,56, 3 Monate)", "de-DE", cli.Money{Symbol: "€", ThousandsSep: ".", DecimalSep: ","}},
}

// setupAnswers holds the raw form values before they are applied.
type setupAnswers struct {
	Locale  int
	Initial string
	Deposit string
	Rate    string
	Horizon string
	Unit    string
	Theme   string
	Compact bool
}

func answersFrom(cfg config.Config) setupAnswers {
	money := moneyFor(cfg)
	loc := 0
	for i, l := range locales {
		if l.Money == money && l.Language == cfg.Display.Language {
			loc = i
		}
	}
	return setupAnswers{
		Locale:  loc,
		Initial: money.Editable(cfg.Defaults.InitialAmount),
		Deposit: money.Editable(cfg.Defaults.MonthlyDeposit),
		Rate:    money.Editable(cfg.Defaults.MonthlyRatePercent),
		Horizon: strconv.Itoa(cfg.Defaults.Horizon),
		Unit:    cfg.Defaults.HorizonUnit,
		Theme:   cfg.Appearance.Theme,
		Compact: cfg.Display.Compact,
	}
}

// apply validates the answers and writes them into cfg.
func (a setupAnswers) apply(cfg config.Config) (config.Config, error) {
	if a.Locale < 0 || a.Locale >= len(locales) {
		return cfg, fmt.Errorf("unknown locale #%d", a.Locale)
	}
	loc := locales[a.Locale]
	money := loc.Money

	initial, err := parseNonNegative(money, a.Initial)
	if err != nil {
		return cfg, fmt.Errorf("initial amount: %w", err)
	}
	deposit, err := parseNonNegative(money, a.Deposit)
	if err != nil {
		return cfg, fmt.Errorf("monthly deposit: %w", err)
	}
	rate, err := parseNonNegative(money, a.Rate)
	if err != nil {
		return cfg, fmt.Errorf("monthly rate: %w", err)
	}
	horizon, err := parseHorizon(a.Horizon)
	if err != nil {
		return cfg, err
	}
	unit, err := model.ParseHorizonUnit(a.Unit)
	if err != nil {
		return cfg, err
	}

	cfg.Defaults = config.DefaultsConfig{
		InitialAmount:      initial,
		MonthlyDeposit:     deposit,
		MonthlyRatePercent: rate,
		Horizon:            horizon,
		HorizonUnit:        string(unit),
	}
	cfg.Display.CurrencySymbol = money.Symbol
	cfg.Display.ThousandsSep = money.ThousandsSep
	cfg.Display.DecimalSep = money.DecimalSep
	cfg.Display.Compact = a.Compact
	cfg.Display.Language = loc.Language
	cfg.Appearance.Theme = theme.ByName(a.Theme).Name
	return cfg, cfg.Validate()
}

func parseNonNegative(m cli.Money, s string) (float64, error) {
	v, err := m.Parse(s)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, errors.New("must not be negative")
	}
	return v, nil
}

func parseHorizon(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("horizon must be a whole number of at least 1")
	}
	return n, nil
}

func runSetup(cmd *cobra.Command, _ []string) error {
	log := zerolog.Ctx(cmd.Context())
	cfg := loadConfigOrDefault(cmd.Context())
	ans := answersFrom(cfg)

	amount := func(s string) error {
		_, err := parseNonNegative(locales[ans.Locale].Money, s)
		return err
	}
	horizon := func(s string) error {
		_, err := parseHorizon(s)
		return err
	}

	localeOpts := make([]huh.Option[int], len(locales))
	for i, l := range locales {
		localeOpts[i] = huh.NewOption(l.Name, i)
	}
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to flynn").
				Description("These values become the defaults for `flynn project` and `flynn tui`."),
			huh.NewSelect[int]().
				Title("Currency format").
				Options(localeOpts...).
				Value(&ans.Locale),
		),
		huh.NewGroup(
			huh.NewInput().Title("Initial amount").Value(&ans.Initial).Validate(amount),
			huh.NewInput().Title("Monthly deposit").Value(&ans.Deposit).Validate(amount),
			huh.NewInput().Title("Monthly interest rate (%)").Value(&ans.Rate).Validate(amount),
		),
		huh.NewGroup(
			huh.NewInput().Title("Horizon").Value(&ans.Horizon).Validate(horizon),
			huh.NewSelect[string]().
				Title("Horizon unit").
				Options(
					huh.NewOption("months", string(model.UnitMonths)),
					huh.NewOption("years", string(model.UnitYears)),
				).
				Value(&ans.Unit),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Color theme").Options(themeOpts...).Value(&ans.Theme),
			huh.NewConfirm().Title("Abbreviate large amounts?").Value(&ans.Compact),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			log.Debug().Msg("setup aborted")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	cfg, err := ans.apply(cfg)
	if err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Saved to %s\n", config.Path())
	fmt.Fprintln(w, "  Run `flynn setup` anytime to reconfigure.")
	fmt.Fprintln(w)
	return nil
}
