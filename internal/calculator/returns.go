package calculator

import (
	"fmt"

	"KellyFolio/internal/model"
)

// TradingDays is the annualization factor: the standard US equity trading-day
// count. Daily means and covariances scale linearly with it under the i.i.d.
// assumption.
const TradingDays = 252

// Returns computes simple arithmetic period returns (P_t - P_{t-1}) / P_{t-1}
// from a price frame. The result has one fewer row than the input since the
// first date has no prior reference.
func Returns(prices *model.Frame) (*model.Frame, error) {
	if prices.NumCols() == 0 {
		return nil, fmt.Errorf("%w: price frame has no symbols", ErrInvalidInput)
	}
	if prices.NumRows() < 2 {
		return nil, fmt.Errorf("%w: need at least 2 price rows, got %d", ErrInvalidInput, prices.NumRows())
	}
	for t, row := range prices.Data {
		if len(row) != prices.NumCols() {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidInput, t, len(row), prices.NumCols())
		}
		for k, p := range row {
			if p <= 0 {
				return nil, fmt.Errorf("%w: non-positive price %g for %s on %s",
					ErrInvalidInput, p, prices.Symbols[k], prices.Dates[t].Format("2006-01-02"))
			}
		}
	}

	out := model.NewFrame(prices.Symbols, prices.NumRows()-1)
	for t := 1; t < prices.NumRows(); t++ {
		row := make([]float64, prices.NumCols())
		for k := range row {
			prev := prices.Data[t-1][k]
			row[k] = (prices.Data[t][k] - prev) / prev
		}
		out.Dates = append(out.Dates, prices.Dates[t])
		out.Data = append(out.Data, row)
	}
	return out, nil
}

// ExcessReturns subtracts the period risk-free rate (annualRF / 252) from
// every cell. A zero rate returns an identical copy.
func ExcessReturns(returns *model.Frame, annualRF float64) *model.Frame {
	dailyRF := annualRF / TradingDays
	out := model.NewFrame(returns.Symbols, returns.NumRows())
	for t, row := range returns.Data {
		excess := make([]float64, len(row))
		for k, r := range row {
			excess[k] = r - dailyRF
		}
		out.Dates = append(out.Dates, returns.Dates[t])
		out.Data = append(out.Data, excess)
	}
	return out
}
