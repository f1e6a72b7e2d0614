package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/flynn/internal/cli"
	"github.com/theirongolddev/flynn/internal/config"
	"github.com/theirongolddev/flynn/internal/model"
	"github.com/theirongolddev/flynn/internal/projection"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func useTempConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FLYNN_THEME", "")
	t.Setenv("FLYNN_CURRENCY", "")
}

// parsedFlags returns a fresh flag set so Changed() reflects only args.
func parsedFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addParamFlags(c)
	require.NoError(t, c.Flags().Parse(args))
	return c
}

func TestResolveParams_DefaultsWhenNoFlags(t *testing.T) {
	d := config.DefaultConfig().Defaults
	p, err := resolveParams(parsedFlags(t).Flags(), d)
	require.NoError(t, err)
	assert.Equal(t, model.SimulationParameters{
		InitialAmount:      0,
		MonthlyDeposit:     1000,
		MonthlyRatePercent: 1,
		HorizonMonths:      12,
	}, p)
}

func TestResolveParams_FlagsOverride(t *testing.T) {
	d := config.DefaultConfig().Defaults
	c := parsedFlags(t, "--initial", "500", "--rate", "0", "--years", "3")

	p, err := resolveParams(c.Flags(), d)
	require.NoError(t, err)
	assert.Equal(t, 500.0, p.InitialAmount)
	assert.Equal(t, 1000.0, p.MonthlyDeposit)
	assert.Equal(t, 0.0, p.MonthlyRatePercent)
	assert.Equal(t, 36, p.HorizonMonths)
}

func TestResolveParams_ConfigUnitYears(t *testing.T) {
	d := config.DefaultConfig().Defaults
	d.Horizon = 2
	d.HorizonUnit = "years"

	p, err := resolveParams(parsedFlags(t).Flags(), d)
	require.NoError(t, err)
	assert.Equal(t, 24, p.HorizonMonths)

	p, err = resolveParams(parsedFlags(t, "--months", "5").Flags(), d)
	require.NoError(t, err)
	assert.Equal(t, 5, p.HorizonMonths)
}

func TestResolveParams_ZeroHorizonIsInvalidParameter(t *testing.T) {
	d := config.DefaultConfig().Defaults
	_, err := resolveParams(parsedFlags(t, "--months", "0").Flags(), d)
	require.Error(t, err)
	assert.True(t, projection.IsInvalidParameter(err))
}

func TestProjectCommandJSON(t *testing.T) {
	useTempConfig(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"project", "--json",
		"--initial", "1000", "--deposit", "100", "--rate", "0", "--months", "3"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		flagJSON = false
	})

	require.NoError(t, rootCmd.Execute())

	var got projectionOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 3, got.Parameters.HorizonMonths)
	assert.InDelta(t, 1300, got.Result.FinalBalance, 1e-9)
	assert.InDelta(t, 1300, got.Result.TotalContributed, 1e-9)
	var labels []string
	for _, pt := range got.Result.Series {
		labels = append(labels, pt.Label)
	}
	assert.Equal(t, []string{"start", "1 month", "2 months", "3 months"}, labels)
}

func TestRenderProjection(t *testing.T) {
	p := model.SimulationParameters{InitialAmount: 1000, MonthlyDeposit: 100, HorizonMonths: 2}
	res, err := projection.Project(p)
	require.NoError(t, err)

	var buf bytes.Buffer
	renderProjection(&buf, p, res, cli.BRL, projection.Portuguese, false)
	out := buf.String()

	assert.Contains(t, out, "SAVINGS PROJECTION")
	assert.Contains(t, out, "Final balance")
	assert.Contains(t, out, "R$ 1.200,00")
	assert.Contains(t, out, "0.00% / month")
	assert.Contains(t, out, "2 meses")
	assert.Contains(t, out, "Início")
}

func TestProjectExamplesParse(t *testing.T) {
	t.Cleanup(func() { flagJSON = false })

	var initials []float64
	for _, line := range strings.Split(projectCmd.Example, "\n") {
		args := strings.Fields(line)
		require.Greater(t, len(args), 2, line)
		c := &cobra.Command{Use: "test"}
		addProjectFlags(c)
		require.NoError(t, c.Flags().Parse(args[2:]), line)

		p, err := resolveParams(c.Flags(), config.DefaultConfig().Defaults)
		require.NoError(t, err, line)
		initials = append(initials, p.InitialAmount)
	}
	assert.Equal(t, []float64{0, 10000}, initials)
}

func TestResolveParams_InvalidConfigDefaults(t *testing.T) {
	d := config.DefaultConfig().Defaults
	d.HorizonUnit = "weeks"

	_, err := resolveParams(parsedFlags(t).Flags(), d)
	require.Error(t, err)
	assert.True(t, projection.IsInvalidParameter(err))
	assert.ErrorContains(t, err, "config defaults")
}

func TestCheckFinite(t *testing.T) {
	p := model.SimulationParameters{MonthlyDeposit: 1, MonthlyRatePercent: 100, HorizonMonths: 1200}
	res, err := projection.Project(p)
	require.NoError(t, err)
	assert.ErrorContains(t, checkFinite(p, res), "overflows")

	p.HorizonMonths = 12
	res, err = projection.Project(p)
	require.NoError(t, err)
	assert.NoError(t, checkFinite(p, res))
}

func TestRunConfigWithoutFile(t *testing.T) {
	useTempConfig(t)

	var buf bytes.Buffer
	c := &cobra.Command{}
	c.SetOut(&buf)
	require.NoError(t, runConfig(c, nil))

	out := buf.String()
	assert.Contains(t, out, "using defaults")
	assert.Contains(t, out, "Início, 12 meses")
	assert.Contains(t, out, "flynn setup")
}
