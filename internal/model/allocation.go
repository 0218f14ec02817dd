package model

import "time"

// Allocation is the final output of the Kelly pipeline for one run. All slices
// are indexed parallel to Symbols. The value is built once and never mutated.
type Allocation struct {
	Symbols      []string
	Full         []float64   // unconstrained Kelly leverage vector F
	Half         []float64   // F / 2
	AnnMean      []float64   // annualized mean excess return M
	AnnCov       [][]float64 // annualized covariance matrix C
	Sharpe       float64
	GrowthRate   float64 // g = r_f + S^2 / 2
	RiskFreeRate float64 // annual, as a fraction
	DiagonalOnly bool
	Observations int // number of return rows behind the estimates
	GeneratedAt  time.Time
}

// Recommended returns the leverage vector the tool advises acting on.
func (a *Allocation) Recommended(fullKelly bool) []float64 {
	if fullKelly {
		return a.Full
	}
	return a.Half
}

// Position is one leg of a dollar-sized allocation plan.
type Position struct {
	Symbol   string
	Leverage float64
	Dollars  float64 // signed notional, negative means short
}
