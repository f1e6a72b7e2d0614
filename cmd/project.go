package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/theirongolddev/flynn/internal/cli"
	"github.com/theirongolddev/flynn/internal/config"
	"github.com/theirongolddev/flynn/internal/model"
	"github.com/theirongolddev/flynn/internal/projection"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	flagInitial float64
	flagDeposit float64
	flagRate    float64
	flagMonths  int
	flagYears   int
	flagJSON    bool
	flagCompact bool
)

const scheduleBarWidth = 24

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Print a savings projection",
	Example: "  flynn project --deposit 500 --rate 0.8 --years 10\n" +
		"  flynn project --initial 10000 --months 18 --json",
	Args: cobra.NoArgs,
	RunE: runProject,
}

func init() {
	addProjectFlags(projectCmd)
	rootCmd.AddCommand(projectCmd)
}

// addProjectFlags registers the parameter flags plus --json.
func addProjectFlags(c *cobra.Command) {
	addParamFlags(c)
	c.Flags().BoolVar(&flagJSON, "json", false, "Print the result as JSON")
}

// addParamFlags registers the simulation parameter flags. Unset flags fall
// back to the [defaults] section of the config file.
func addParamFlags(c *cobra.Command) {
	f := c.Flags()
	f.Float64VarP(&flagInitial, "initial", "i", 0, "Initial amount")
	f.Float64VarP(&flagDeposit, "deposit", "d", 0, "Monthly deposit")
	f.Float64VarP(&flagRate, "rate", "r", 0, "Monthly interest rate in percent (1 = 1%)")
	f.IntVarP(&flagMonths, "months", "m", 0, "Horizon in months")
	f.IntVarP(&flagYears, "years", "y", 0, "Horizon in years")
	f.BoolVar(&flagCompact, "compact", false, "Abbreviate large amounts (R$ 1.2M)")
	c.MarkFlagsMutuallyExclusive("months", "years")
}

// resolveParams merges changed flags over the config defaults.
func resolveParams(flags *pflag.FlagSet, d config.DefaultsConfig) (model.SimulationParameters, error) {
	p, err := d.Parameters()
	if err != nil {
		return p, fmt.Errorf("%w: config defaults: %v", projection.ErrInvalidParameter, err)
	}
	if flags.Changed("initial") {
		p.InitialAmount = flagInitial
	}
	if flags.Changed("deposit") {
		p.MonthlyDeposit = flagDeposit
	}
	if flags.Changed("rate") {
		p.MonthlyRatePercent = flagRate
	}

	var months int
	switch {
	case flags.Changed("months") && flags.Changed("years"):
		return p, fmt.Errorf("--months and --years are mutually exclusive")
	case flags.Changed("months"):
		months, err = model.HorizonMonths(flagMonths, model.UnitMonths)
	case flags.Changed("years"):
		months, err = model.HorizonMonths(flagYears, model.UnitYears)
	default:
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("%w: %v", projection.ErrInvalidParameter, err)
	}
	p.HorizonMonths = months
	return p, nil
}

// checkFinite rejects projections whose amounts overflowed float64.
func checkFinite(p model.SimulationParameters, res model.ProjectionResult) error {
	if res.Finite() {
		return nil
	}
	return fmt.Errorf("projection overflows: %s over %s exceeds the representable range; lower --rate or the horizon",
		cli.FormatRate(p.MonthlyRatePercent), cli.FormatHorizon(p.HorizonMonths))
}

func runProject(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := zerolog.Ctx(ctx)
	cfg := loadConfigOrDefault(ctx)

	p, err := resolveParams(cmd.Flags(), cfg.Defaults)
	if err != nil {
		return err
	}

	log.Debug().
		Float64("initial", p.InitialAmount).
		Float64("deposit", p.MonthlyDeposit).
		Float64("rate_pct", p.MonthlyRatePercent).
		Int("horizon_months", p.HorizonMonths).
		Msg("projecting")

	res, err := projection.Project(p)
	if err != nil {
		return err
	}
	if err := checkFinite(p, res); err != nil {
		return err
	}
	log.Debug().Int("samples", len(res.Series)).Float64("final_balance", res.FinalBalance).Msg("projection done")

	out := cmd.OutOrStdout()
	if flagJSON {
		return writeJSON(out, p, res)
	}

	renderProjection(out, p, res, moneyFor(cfg), projection.PeriodsFor(cfg.Display.Language), flagCompact || cfg.Display.Compact)
	return nil
}

type projectionOutput struct {
	Parameters model.SimulationParameters `json:"parameters"`
	Result     model.ProjectionResult     `json:"result"`
}

func writeJSON(w io.Writer, p model.SimulationParameters, res model.ProjectionResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(projectionOutput{Parameters: p, Result: res})
}

func renderProjection(w io.Writer, p model.SimulationParameters, res model.ProjectionResult,
	money cli.Money, periods projection.Periods, compact bool) {
	total := money.Format
	if compact {
		total = money.FormatCompact
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("SAVINGS PROJECTION  "+cli.FormatHorizon(p.HorizonMonths)))
	fmt.Fprintln(w)

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Initial amount", money.Format(p.InitialAmount)},
			{"Monthly deposit", money.Format(p.MonthlyDeposit)},
			{"Monthly rate", cli.FormatRate(p.MonthlyRatePercent)},
			{"Horizon", cli.FormatHorizon(p.HorizonMonths)},
			{"---"},
			{"Total deposited", total(res.TotalContributed)},
			{"Total earnings", total(res.TotalEarnings)},
			{"Final balance", total(res.FinalBalance)},
			{"Earnings share", cli.FormatPercent(res.EarningsShare())},
		},
	}))
	fmt.Fprintln(w)

	maxBalance := 0.0
	for _, pt := range res.Series {
		if pt.Balance > maxBalance {
			maxBalance = pt.Balance
		}
	}

	rows := make([][]string, 0, len(res.Series))
	for _, pt := range res.Series {
		rows = append(rows, []string{
			periods.Label(pt.Month),
			money.FormatWhole(pt.Balance),
			money.Format(pt.Contributed),
			money.FormatWhole(pt.Earnings),
			cli.RenderStackedBar(pt.Contributed, pt.Earnings, maxBalance, scheduleBarWidth),
		})
	}
	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Title:   "Schedule",
		Headers: []string{"Period", "Balance", "Deposited", "Earnings", ""},
		Rows:    rows,
	}))

	fmt.Fprintf(w, "\n  %s  %s\n", cli.RenderBalanceSparkline(res.Balances()), cli.RenderLegend())
	fmt.Fprintf(w, "  %s\n\n", cli.RenderMuted("Balance and earnings per row are rounded to whole units; totals are exact."))
}
