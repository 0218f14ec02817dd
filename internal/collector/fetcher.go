package collector

import "KellyFolio/internal/model"

// Fetcher defines the interface for fetching daily price history.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
