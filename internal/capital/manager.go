package capital

import (
	"sync"
	"time"

	"KellyFolio/internal/model"
)

// Manager turns leverage fractions into dollar notionals against a persisted
// bankroll, and keeps per-run bookkeeping across invocations.
type Manager struct {
	mu       sync.Mutex
	state    *model.CapitalState
	filePath string
}

// NewManager creates a Manager, loading or initializing state from disk. The
// configured bankroll always wins over whatever the state file holds, so the
// user can resize it between runs.
func NewManager(filePath string, bankroll float64) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	state.Bankroll = bankroll

	m := &Manager{state: state, filePath: filePath}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

// GetState returns a copy of the current capital state.
func (m *Manager) GetState() model.CapitalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.state
}

// PlanPositions converts an allocation into signed dollar notionals for the
// current bankroll, using either the full or the half-Kelly vector.
func (m *Manager) PlanPositions(alloc *model.Allocation, fullKelly bool) []model.Position {
	m.mu.Lock()
	bankroll := m.state.Bankroll
	m.mu.Unlock()

	leverages := alloc.Recommended(fullKelly)
	positions := make([]model.Position, len(alloc.Symbols))
	for i, symbol := range alloc.Symbols {
		positions[i] = model.Position{
			Symbol:   symbol,
			Leverage: leverages[i],
			Dollars:  leverages[i] * bankroll,
		}
	}
	return positions
}

// RecordRun updates the persisted bookkeeping after a successful allocation.
func (m *Manager) RecordRun(alloc *model.Allocation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state.RunCount++
	m.state.LastSymbols = alloc.Symbols
	m.state.LastSharpe = alloc.Sharpe
	m.state.LastGrowthRate = alloc.GrowthRate
	m.state.LastRunAt = time.Now()
	return m.save()
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
