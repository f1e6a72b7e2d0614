// Package model defines the value types shared by the projection engine and its callers.
package model

import "math"

// SimulationParameters are the four scalars the engine consumes.
type SimulationParameters struct {
	InitialAmount      float64 `json:"initial_amount"`
	MonthlyDeposit     float64 `json:"monthly_deposit"`
	MonthlyRatePercent float64 `json:"monthly_rate_percent"` // 1.0 means 1% per month
	HorizonMonths      int     `json:"horizon_months"`
}

// ProjectionPoint is one sampled month of the balance trajectory.
// Balance and Earnings are rounded to whole currency units; Contributed is exact.
type ProjectionPoint struct {
	Month       int     `json:"month"`
	Label       string  `json:"label"`
	Balance     float64 `json:"balance"`
	Contributed float64 `json:"contributed"`
	Earnings    float64 `json:"earnings"`
}

// ProjectionResult holds the unrounded totals and the sampled series.
type ProjectionResult struct {
	FinalBalance     float64           `json:"final_balance"`
	TotalContributed float64           `json:"total_contributed"`
	TotalEarnings    float64           `json:"total_earnings"`
	Series           []ProjectionPoint `json:"series"`
}

// Balances returns the emitted balance of each series point, in order.
func (r ProjectionResult) Balances() []float64 {
	out := make([]float64, len(r.Series))
	for i, p := range r.Series {
		out[i] = p.Balance
	}
	return out
}

// Contributions returns the cumulative contributed amount of each series point.
func (r ProjectionResult) Contributions() []float64 {
	out := make([]float64, len(r.Series))
	for i, p := range r.Series {
		out[i] = p.Contributed
	}
	return out
}

// Finite reports whether every total and emitted amount is a real number.
// Extreme rates over long horizons overflow float64 to +Inf.
func (r ProjectionResult) Finite() bool {
	for _, v := range []float64{r.FinalBalance, r.TotalContributed, r.TotalEarnings} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	for _, p := range r.Series {
		if math.IsInf(p.Balance, 0) || math.IsNaN(p.Earnings) || math.IsInf(p.Earnings, 0) {
			return false
		}
	}
	return true
}

// EarningsShare is the fraction of the final balance that came from interest.
func (r ProjectionResult) EarningsShare() float64 {
	if r.FinalBalance <= 0 {
		return 0
	}
	return r.TotalEarnings / r.FinalBalance
}
