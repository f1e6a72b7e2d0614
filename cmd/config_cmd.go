package cmd

import (
	"fmt"

	"github.com/theirongolddev/flynn/internal/cli"
	"github.com/theirongolddev/flynn/internal/config"
	"github.com/theirongolddev/flynn/internal/projection"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	money := moneyFor(cfg)
	periods := projection.PeriodsFor(cfg.Display.Language)

	fmt.Fprintf(w, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(w, "  Status: loaded")
	} else {
		fmt.Fprintln(w, "  Status: "+cli.RenderWarning("using defaults (no config file)"))
	}
	fmt.Fprintln(w)

	d := cfg.Defaults
	fmt.Fprintln(w, "  [Defaults]")
	fmt.Fprintf(w, "    Initial amount:  %s\n", money.Format(d.InitialAmount))
	fmt.Fprintf(w, "    Monthly deposit: %s\n", money.Format(d.MonthlyDeposit))
	fmt.Fprintf(w, "    Monthly rate:    %s\n", cli.FormatRate(d.MonthlyRatePercent))
	fmt.Fprintf(w, "    Horizon:         %d %s\n", d.Horizon, d.HorizonUnit)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Display]")
	fmt.Fprintf(w, "    Currency symbol: %q\n", cfg.Display.CurrencySymbol)
	fmt.Fprintf(w, "    Separators:      thousands %q, decimal %q\n", cfg.Display.ThousandsSep, cfg.Display.DecimalSep)
	fmt.Fprintf(w, "    Compact amounts: %v\n", cfg.Display.Compact)
	fmt.Fprintf(w, "    Period labels:   %s (%s, %s)\n", cfg.Display.Language, periods.Label(0), periods.Label(12))
	fmt.Fprintf(w, "    Sample:          %s\n", money.Format(1234567.89))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "  [Appearance]")
	fmt.Fprintf(w, "    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(w)

	fmt.Fprintln(w, cli.RenderMuted("  Run `flynn setup` to reconfigure."))
	return nil
}
