package collector

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"KellyFolio/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars map[string][]model.OHLCV
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, _ int) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	bars, ok := m.Bars[symbol]
	if !ok || len(bars) == 0 {
		return nil, fmt.Errorf("mock: no data returned for %s", symbol)
	}
	return bars, nil
}

// Collector fetches price history for a set of symbols and aligns it into a
// single date-indexed frame.
type Collector struct {
	Fetcher  Fetcher
	Symbols  []string
	Lookback int // lookback window in days
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbols []string, lookback int) *Collector {
	return &Collector{Fetcher: fetcher, Symbols: symbols, Lookback: lookback}
}

// CollectPrices fetches all symbols concurrently and builds the aligned price
// frame: dates present for no symbol are dropped, single-day gaps are forward
// filled from the previous close, and dates still incomplete after that are
// discarded. Fails when any symbol returns no data or fewer than 2 aligned
// rows survive.
func (c *Collector) CollectPrices() (*model.Frame, error) {
	if len(c.Symbols) == 0 {
		return nil, fmt.Errorf("no symbols configured")
	}

	series := make([]map[time.Time]float64, len(c.Symbols))
	var g errgroup.Group
	for i, symbol := range c.Symbols {
		i, symbol := i, symbol
		g.Go(func() error {
			bars, err := c.Fetcher.FetchDailyBars(symbol, c.Lookback)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", symbol, err)
			}
			if len(bars) == 0 {
				return fmt.Errorf("no data returned for %s", symbol)
			}
			closes := make(map[time.Time]float64, len(bars))
			for _, b := range bars {
				closes[dateOnly(b.Time)] = b.Close
			}
			series[i] = closes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dates := unionDates(series)
	frame := alignSeries(c.Symbols, dates, series)
	if frame.NumRows() < 2 {
		return nil, fmt.Errorf("insufficient data: got %d aligned rows for %v, need at least 2", frame.NumRows(), c.Symbols)
	}

	log.Printf("[INFO] collected %d aligned rows for %d symbols via %s", frame.NumRows(), len(c.Symbols), c.Fetcher.Name())
	return frame, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func unionDates(series []map[time.Time]float64) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, s := range series {
		for d := range s {
			seen[d] = struct{}{}
		}
	}
	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// alignSeries builds the rectangular frame. Missing cells are forward filled
// from the previous date only (a single-gap limit, so a delisted or stale
// series cannot masquerade as live data), then any date still missing a value
// is dropped.
func alignSeries(symbols []string, dates []time.Time, series []map[time.Time]float64) *model.Frame {
	grid := make([][]float64, len(dates))
	for i, d := range dates {
		row := make([]float64, len(symbols))
		for k, s := range series {
			if v, ok := s[d]; ok {
				row[k] = v
			} else {
				row[k] = math.NaN()
			}
		}
		grid[i] = row
	}

	// Forward fill with limit 1: only a cell whose previous date had a real
	// observation gets filled.
	for k := range symbols {
		for i := 1; i < len(grid); i++ {
			if math.IsNaN(grid[i][k]) && !math.IsNaN(grid[i-1][k]) {
				if _, observed := series[k][dates[i-1]]; observed {
					grid[i][k] = grid[i-1][k]
				}
			}
		}
	}

	frame := model.NewFrame(symbols, len(dates))
	for i, row := range grid {
		complete := true
		for _, v := range row {
			if math.IsNaN(v) {
				complete = false
				break
			}
		}
		if complete {
			frame.Dates = append(frame.Dates, dates[i])
			frame.Data = append(frame.Data, row)
		}
	}
	return frame
}
