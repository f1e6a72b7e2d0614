package model

import (
	"fmt"
	"math"
	"strings"
)

// HorizonUnit is the unit the user entered the horizon in.
type HorizonUnit string

const (
	UnitMonths HorizonUnit = "months"
	UnitYears  HorizonUnit = "years"
)

// ParseHorizonUnit accepts "months"/"years" and their short forms.
func ParseHorizonUnit(s string) (HorizonUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "m", "mo", "month", "months":
		return UnitMonths, nil
	case "y", "yr", "year", "years":
		return UnitYears, nil
	default:
		return "", fmt.Errorf("unknown horizon unit %q", s)
	}
}

// Toggle returns the other unit.
func (u HorizonUnit) Toggle() HorizonUnit {
	if u == UnitYears {
		return UnitMonths
	}
	return UnitYears
}

// HorizonMonths converts a horizon entered in the given unit to whole months.
func HorizonMonths(value int, unit HorizonUnit) (int, error) {
	if value < 1 {
		return 0, fmt.Errorf("horizon must be at least 1, got %d", value)
	}
	switch unit {
	case UnitMonths, "":
		return value, nil
	case UnitYears:
		if value > math.MaxInt/12 {
			return 0, fmt.Errorf("horizon of %d years is too large", value)
		}
		return value * 12, nil
	default:
		return 0, fmt.Errorf("unknown horizon unit %q", unit)
	}
}

// ClampParameters applies the input-layer clamping of the interactive
// calculator: negative amounts and rates become zero and the horizon is at
// least one month. The engine still validates whatever it receives.
func ClampParameters(p SimulationParameters) SimulationParameters {
	p.InitialAmount = clampNonNegative(p.InitialAmount)
	p.MonthlyDeposit = clampNonNegative(p.MonthlyDeposit)
	p.MonthlyRatePercent = clampNonNegative(p.MonthlyRatePercent)
	if p.HorizonMonths < 1 {
		p.HorizonMonths = 1
	}
	return p
}

func clampNonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
