package recorder

import "KellyFolio/internal/model"

// Recorder persists allocation runs for later analysis.
type Recorder interface {
	RecordRun(alloc *model.Allocation) error
	Close() error
}
