package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/flynn/internal/model"
)

// Config holds all flynn configuration.
type Config struct {
	Defaults   DefaultsConfig   `toml:"defaults"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// DefaultsConfig holds the parameters used when no flag overrides them.
type DefaultsConfig struct {
	InitialAmount      float64 `toml:"initial_amount"`
	MonthlyDeposit     float64 `toml:"monthly_deposit"`
	MonthlyRatePercent float64 `toml:"monthly_rate_percent"`
	Horizon            int     `toml:"horizon"`
	HorizonUnit        string  `toml:"horizon_unit"`
}

// DisplayConfig controls how money is rendered.
type DisplayConfig struct {
	CurrencySymbol string `toml:"currency_symbol"`
	ThousandsSep   string `toml:"thousands_sep"`
	DecimalSep     string `toml:"decimal_sep"`
	Compact        bool   `toml:"compact"`
	Language       string `toml:"language"` // period labels: pt-BR, en-US, de-DE
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			InitialAmount:      0,
			MonthlyDeposit:     1000,
			MonthlyRatePercent: 1,
			Horizon:            12,
			HorizonUnit:        string(model.UnitMonths),
		},
		Display: DisplayConfig{
			CurrencySymbol: "R$",
			ThousandsSep:   ".",
			DecimalSep:     ",",
			Language:       "pt-BR",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flynn")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "flynn")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// FLYNN_THEME and FLYNN_CURRENCY override the file.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if len(data) > 0 {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if v := os.Getenv("FLYNN_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv("FLYNN_CURRENCY"); v != "" {
		cfg.Display.CurrencySymbol = v
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Validate checks the stored defaults and separators.
func (c Config) Validate() error {
	d := c.Defaults
	if d.InitialAmount < 0 {
		return fmt.Errorf("defaults.initial_amount must not be negative")
	}
	if d.MonthlyDeposit < 0 {
		return fmt.Errorf("defaults.monthly_deposit must not be negative")
	}
	if d.MonthlyRatePercent < 0 {
		return fmt.Errorf("defaults.monthly_rate_percent must not be negative")
	}
	if d.Horizon < 1 {
		return fmt.Errorf("defaults.horizon must be at least 1")
	}
	if _, err := model.ParseHorizonUnit(d.HorizonUnit); err != nil {
		return fmt.Errorf("defaults.horizon_unit: %w", err)
	}
	if len([]rune(c.Display.DecimalSep)) != 1 {
		return fmt.Errorf("display.decimal_sep must be a single character")
	}
	if n := len([]rune(c.Display.ThousandsSep)); n > 1 {
		return fmt.Errorf("display.thousands_sep must be at most one character")
	}
	if c.Display.ThousandsSep == c.Display.DecimalSep {
		return fmt.Errorf("display.thousands_sep and display.decimal_sep must differ")
	}
	return nil
}

// Parameters converts the stored defaults into engine parameters.
func (d DefaultsConfig) Parameters() (model.SimulationParameters, error) {
	unit, err := model.ParseHorizonUnit(d.HorizonUnit)
	if err != nil {
		return model.SimulationParameters{}, err
	}
	months, err := model.HorizonMonths(d.Horizon, unit)
	if err != nil {
		return model.SimulationParameters{}, err
	}
	return model.SimulationParameters{
		InitialAmount:      d.InitialAmount,
		MonthlyDeposit:     d.MonthlyDeposit,
		MonthlyRatePercent: d.MonthlyRatePercent,
		HorizonMonths:      months,
	}, nil
}
