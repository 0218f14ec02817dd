package capital

import (
	"path/filepath"
	"testing"

	"KellyFolio/internal/model"
)

func testAlloc() *model.Allocation {
	return &model.Allocation{
		Symbols:    []string{"AAPL", "MSFT"},
		Full:       []float64{2.0, -0.5},
		Half:       []float64{1.0, -0.25},
		Sharpe:     0.8,
		GrowthRate: 0.37,
	}
}

func TestPlanPositions(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "state.json"), 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	positions := m.PlanPositions(testAlloc(), false)
	if len(positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(positions))
	}
	if positions[0].Dollars != 10000 {
		t.Errorf("AAPL half-Kelly notional = %v, want 10000", positions[0].Dollars)
	}
	if positions[1].Dollars != -2500 {
		t.Errorf("MSFT half-Kelly notional = %v, want -2500 (short)", positions[1].Dollars)
	}

	full := m.PlanPositions(testAlloc(), true)
	if full[0].Dollars != 20000 {
		t.Errorf("AAPL full-Kelly notional = %v, want 20000", full[0].Dollars)
	}
}

func TestRecordRun_PersistsAcrossManagers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	m, err := NewManager(path, 10000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.RecordRun(testAlloc()); err != nil {
		t.Fatalf("record run: %v", err)
	}

	reloaded, err := NewManager(path, 25000)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	state := reloaded.GetState()
	if state.RunCount != 1 {
		t.Errorf("run count = %d, want 1", state.RunCount)
	}
	if state.LastSharpe != 0.8 {
		t.Errorf("last sharpe = %v, want 0.8", state.LastSharpe)
	}
	// Configured bankroll overrides the persisted one.
	if state.Bankroll != 25000 {
		t.Errorf("bankroll = %v, want 25000", state.Bankroll)
	}
}
