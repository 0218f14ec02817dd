package model

import "time"

// CapitalState tracks the bankroll used to turn leverage fractions into
// dollar notionals, persisted between runs.
type CapitalState struct {
	Bankroll       float64   `json:"bankroll"`
	RunCount       int       `json:"run_count"`
	LastSymbols    []string  `json:"last_symbols"`
	LastSharpe     float64   `json:"last_sharpe"`
	LastGrowthRate float64   `json:"last_growth_rate"`
	LastRunAt      time.Time `json:"last_run_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
