package advisor

import (
	"strings"
	"testing"

	"KellyFolio/internal/model"
)

func TestAssess_QuietWhenUnleveraged(t *testing.T) {
	alloc := &model.Allocation{
		Symbols:      []string{"AAPL", "MSFT"},
		Full:         []float64{0.8, -0.9},
		Observations: 120,
	}
	advice := Assess(alloc)
	if len(advice.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", advice.Warnings)
	}
	if len(advice.Disclaimers) == 0 {
		t.Error("disclaimers must always be present")
	}
}

func TestAssess_FlagsHighLeverage(t *testing.T) {
	alloc := &model.Allocation{
		Symbols:      []string{"AAPL", "MSFT"},
		Full:         []float64{2.5, -1.3},
		Observations: 120,
	}
	advice := Assess(alloc)
	if len(advice.Warnings) != 2 {
		t.Fatalf("expected 2 leverage warnings, got %d: %v", len(advice.Warnings), advice.Warnings)
	}
	if !strings.Contains(advice.Warnings[0], "leveraged long") {
		t.Errorf("positive leverage should read as long: %s", advice.Warnings[0])
	}
	if !strings.Contains(advice.Warnings[1], "short") {
		t.Errorf("negative leverage should read as short: %s", advice.Warnings[1])
	}
}

func TestAssess_FlagsSmallSample(t *testing.T) {
	alloc := &model.Allocation{
		Symbols:      []string{"AAPL"},
		Full:         []float64{0.5},
		Observations: 30,
	}
	advice := Assess(alloc)
	if len(advice.Warnings) != 1 || !strings.Contains(advice.Warnings[0], "small sample") {
		t.Errorf("expected a small-sample warning, got %v", advice.Warnings)
	}
}
