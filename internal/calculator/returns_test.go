package calculator

import (
	"errors"
	"math"
	"testing"
	"time"

	"KellyFolio/internal/model"
)

func makeFrame(t *testing.T, symbols []string, rows [][]float64) *model.Frame {
	t.Helper()
	f := model.NewFrame(symbols, len(rows))
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for _, row := range rows {
		f.Dates = append(f.Dates, day)
		f.Data = append(f.Data, row)
		day = day.AddDate(0, 0, 1)
	}
	return f
}

func TestReturns_SimpleSeries(t *testing.T) {
	prices := makeFrame(t, []string{"A"}, [][]float64{{100}, {110}, {121}})
	returns, err := Returns(prices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if returns.NumRows() != 2 {
		t.Fatalf("expected 2 return rows, got %d", returns.NumRows())
	}
	for i, want := range []float64{0.1, 0.1} {
		got := returns.Data[i][0]
		if math.Abs(got-want) > 1e-9*math.Abs(want) {
			t.Errorf("return[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestReturns_MultipleAssets(t *testing.T) {
	prices := makeFrame(t, []string{"A", "B"}, [][]float64{{100, 200}, {110, 210}})
	returns, err := Returns(prices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := returns.Data[0][0]; math.Abs(got-0.10) > 1e-12 {
		t.Errorf("A return = %v, want 0.10", got)
	}
	if got := returns.Data[0][1]; math.Abs(got-0.05) > 1e-12 {
		t.Errorf("B return = %v, want 0.05", got)
	}
}

func TestReturns_DropsFirstRow(t *testing.T) {
	prices := makeFrame(t, []string{"A"}, [][]float64{{100}, {110}, {121}, {133.1}})
	returns, err := Returns(prices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if returns.NumRows() != prices.NumRows()-1 {
		t.Errorf("expected %d rows, got %d", prices.NumRows()-1, returns.NumRows())
	}
	if !returns.Dates[0].Equal(prices.Dates[1]) {
		t.Errorf("first return date %v should be second price date %v", returns.Dates[0], prices.Dates[1])
	}
}

func TestReturns_RejectsNonPositivePrice(t *testing.T) {
	for name, rows := range map[string][][]float64{
		"zero":     {{100}, {0}, {121}},
		"negative": {{100}, {-5}, {121}},
	} {
		prices := makeFrame(t, []string{"A"}, rows)
		if _, err := Returns(prices); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%s price: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestReturns_RejectsTooFewRows(t *testing.T) {
	prices := makeFrame(t, []string{"A"}, [][]float64{{100}})
	if _, err := Returns(prices); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for single row, got %v", err)
	}
}

func TestExcessReturns_SubtractsDailyRate(t *testing.T) {
	returns := makeFrame(t, []string{"A"}, [][]float64{{0.10}, {0.10}})
	excess := ExcessReturns(returns, 0.0252)
	dailyRF := 0.0252 / 252 // exactly 0.0001
	for i := range excess.Data {
		if got, want := excess.Data[i][0], 0.10-dailyRF; got != want {
			t.Errorf("excess[%d] = %v, want %v", i, got, want)
		}
	}
}

func TestExcessReturns_ZeroRateIsIdentity(t *testing.T) {
	returns := makeFrame(t, []string{"A"}, [][]float64{{0.05}, {-0.02}})
	excess := ExcessReturns(returns, 0)
	for i := range returns.Data {
		if excess.Data[i][0] != returns.Data[i][0] {
			t.Errorf("row %d: excess %v differs from input %v", i, excess.Data[i][0], returns.Data[i][0])
		}
	}
}
