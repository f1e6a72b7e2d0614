// Package projection computes compound savings trajectories with monthly deposits.
package projection

import (
	"math"

	"github.com/theirongolddev/flynn/internal/model"
)

// MaxSamples is the sampling step divisor: horizons above it are sampled
// every ceil(H/MaxSamples) months, and since the final month is always kept
// a series holds at most MaxSamples+1 points after month 0.
const MaxSamples = 24

// LabelStart tags month 0 in the emitted series.
const LabelStart = "start"

// Project runs the monthly deposit-then-compound recurrence and samples it
// for charting. Arithmetic stays unrounded; only emitted points are rounded.
func Project(p model.SimulationParameters) (model.ProjectionResult, error) {
	if err := Validate(p); err != nil {
		return model.ProjectionResult{}, err
	}

	rate := p.MonthlyRatePercent / 100
	balance := p.InitialAmount
	contributed := p.InitialAmount
	step := sampleStep(p.HorizonMonths)

	series := make([]model.ProjectionPoint, 0, MaxSamples+2)
	if p.InitialAmount > 0 {
		series = append(series, model.ProjectionPoint{
			Month:       0,
			Label:       Label(0),
			Balance:     math.Round(p.InitialAmount),
			Contributed: p.InitialAmount,
			Earnings:    0,
		})
	}

	for m := 1; m <= p.HorizonMonths; m++ {
		contributed += p.MonthlyDeposit
		balance = (balance + p.MonthlyDeposit) * (1 + rate)

		if !sampled(m, p.HorizonMonths, step) {
			continue
		}
		series = append(series, model.ProjectionPoint{
			Month:       m,
			Label:       Label(m),
			Balance:     math.Round(balance),
			Contributed: contributed,
			Earnings:    math.Round(balance - contributed),
		})
	}

	return model.ProjectionResult{
		FinalBalance:     balance,
		TotalContributed: contributed,
		TotalEarnings:    balance - contributed,
		Series:           series,
	}, nil
}

// Validate rejects negative or non-finite amounts and horizons below one month.
func Validate(p model.SimulationParameters) error {
	if p.HorizonMonths < 1 {
		return &ParamError{Field: "horizon_months", Value: float64(p.HorizonMonths), Reason: "must be at least 1"}
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"initial_amount", p.InitialAmount},
		{"monthly_deposit", p.MonthlyDeposit},
		{"monthly_rate_percent", p.MonthlyRatePercent},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ParamError{Field: f.name, Value: f.value, Reason: "must be finite"}
		}
		if f.value < 0 {
			return &ParamError{Field: f.name, Value: f.value, Reason: "must not be negative"}
		}
	}
	return nil
}

// Label returns the period tag the engine emits for a month index.
func Label(month int) string {
	return English.Label(month)
}

func sampleStep(horizon int) int {
	if horizon <= MaxSamples {
		return 1
	}
	return (horizon + MaxSamples - 1) / MaxSamples
}

func sampled(month, horizon, step int) bool {
	return horizon <= MaxSamples || month%step == 0 || month == horizon
}
