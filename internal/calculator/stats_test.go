package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestSharpe_SingleAssetKnownValue(t *testing.T) {
	// M = 0.10, C = 0.04 solves to F = 2.5, so S = sqrt(2.5*0.04*2.5) = 0.5.
	s, err := Sharpe([]float64{2.5}, [][]float64{{0.04}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(s-0.5) > 1e-6 {
		t.Errorf("Sharpe = %v, want 0.5", s)
	}
}

func TestSharpe_ClampsTinyNegativeRadicand(t *testing.T) {
	s, err := Sharpe([]float64{1}, [][]float64{{-1e-12}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != 0 {
		t.Errorf("Sharpe = %v, want 0 for float-noise radicand", s)
	}
}

func TestSharpe_MateriallyNegativeRadicandFails(t *testing.T) {
	if _, err := Sharpe([]float64{1}, [][]float64{{-0.01}}); !errors.Is(err, ErrNumericInstability) {
		t.Errorf("expected ErrNumericInstability, got %v", err)
	}
}

func TestSharpe_ShapeMismatch(t *testing.T) {
	if _, err := Sharpe([]float64{1, 2}, [][]float64{{0.04}}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMaxGrowthRate(t *testing.T) {
	if got := MaxGrowthRate(0.05, 1.0); got != 0.55 {
		t.Errorf("g(0.05, 1.0) = %v, want 0.55", got)
	}
	if got := MaxGrowthRate(0.03, 0); got != 0.03 {
		t.Errorf("g(0.03, 0) = %v, want risk-free rate 0.03", got)
	}
}

func TestHalfKelly(t *testing.T) {
	got := HalfKelly([]float64{2.0, -1.0, 0.5})
	want := []float64{1.0, -0.5, 0.25}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("half[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
