package model

import "time"

// OHLCV represents a single daily candlestick bar. Close carries the
// dividend/split adjusted closing price when the data source provides one.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Frame is a date-indexed matrix of per-symbol values. It holds the aligned
// price history coming out of the collector as well as the derived return
// matrices: one row per date (chronologically ascending, unique), one column
// per symbol, no missing cells.
type Frame struct {
	Symbols []string
	Dates   []time.Time
	Data    [][]float64
}

// NewFrame allocates an empty Frame with the given symbols and row capacity.
func NewFrame(symbols []string, rows int) *Frame {
	return &Frame{
		Symbols: symbols,
		Dates:   make([]time.Time, 0, rows),
		Data:    make([][]float64, 0, rows),
	}
}

// NumRows returns the number of dates in the frame.
func (f *Frame) NumRows() int { return len(f.Data) }

// NumCols returns the number of symbols in the frame.
func (f *Frame) NumCols() int { return len(f.Symbols) }

// Column returns a copy of the value series for column k.
func (f *Frame) Column(k int) []float64 {
	col := make([]float64, len(f.Data))
	for i, row := range f.Data {
		col[i] = row[k]
	}
	return col
}

// Flat returns the cell values in row-major order, the layout gonum's dense
// matrix constructor expects.
func (f *Frame) Flat() []float64 {
	out := make([]float64, 0, len(f.Data)*len(f.Symbols))
	for _, row := range f.Data {
		out = append(out, row...)
	}
	return out
}
