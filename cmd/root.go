// Package cmd implements the flynn CLI commands.
package cmd

import (
	"context"
	"os"

	"github.com/theirongolddev/flynn/internal/cli"
	"github.com/theirongolddev/flynn/internal/config"
	"github.com/theirongolddev/flynn/internal/logging"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagQuiet   bool
	flagVerbose bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "flynn",
	Short: "Compound savings projection calculator",
	Long: "Project how an initial amount plus a fixed monthly deposit grows under\n" +
		"monthly compound interest. Without a subcommand flynn runs `project`.",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runProject,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress log output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colors")

	addProjectFlags(rootCmd)
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	noColor := flagNoColor || os.Getenv("NO_COLOR") != ""
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger := logging.New(logging.Options{
		Verbose: flagVerbose,
		Quiet:   flagQuiet,
		NoColor: noColor,
		Out:     cmd.ErrOrStderr(),
	})
	cmd.SetContext(logging.WithContext(cmd.Context(), logger))
	return nil
}

// loadConfigOrDefault falls back to defaults when the config file is
// unreadable, so a broken file never blocks a projection.
func loadConfigOrDefault(ctx context.Context) config.Config {
	cfg, err := config.Load()
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("path", config.Path()).Msg("config ignored, using defaults")
		return config.DefaultConfig()
	}
	zerolog.Ctx(ctx).Debug().Str("path", config.Path()).Bool("exists", config.Exists()).Msg("config loaded")
	return cfg
}

func moneyFor(cfg config.Config) cli.Money {
	return cli.Money{
		Symbol:       cfg.Display.CurrencySymbol,
		ThousandsSep: cfg.Display.ThousandsSep,
		DecimalSep:   cfg.Display.DecimalSep,
	}
}
