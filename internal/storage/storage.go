// internal/storage/storage.go
package storage

import (
	"time"

	"github.com/stepshot/stepshot/pkg/core"
)

// Run is one completed trajectory as handed to a backend: the launch
// angle, the terminal classification, the landing state and the sampled
// flight path.
type Run struct {
	Angle        float64
	Outcome      core.Outcome
	Event        core.BoundaryEvent
	Landing      core.Point
	LandingError float64
	Positions    []core.Point
	TimeStep     float64
	Solution     bool
}

// Backend is the interface all recording implementations must satisfy.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Sweep management
	StartSweep(params *core.Parameters, startedAt time.Time) error
	EndSweep(solutions []float64) error

	// Trajectory recording
	RecordRun(run *Run) error
}

// Exportable is an optional interface for backends that produce a file
// suitable for handing to the plotting collaborator.
type Exportable interface {
	GetExportedFilePath() string
}
