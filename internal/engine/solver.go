package engine

import "github.com/stepshot/stepshot/pkg/core"

// SingleStep is a self-contained single-step method. It advances the
// trajectory by one step of size dt from its newest history sample,
// pushing the new (velocity, acceleration) pair and appending the new
// position. Used to seed the multistep history and to consume partial
// steps after a wall deflection.
type SingleStep interface {
	Step(p *core.Parameters, traj *Trajectory, dt float64)
}

// MultiStep advances position and velocity by one fixed step using the
// trajectory's stored history. It mutates the history by exactly one push
// and returns the new position for the caller to classify before it is
// committed.
type MultiStep interface {
	Step(p *core.Parameters, pos core.Point, h *History, dt float64) core.Point
}

// Solver pairs the bootstrap method with the production integrator. The
// pairing is fixed at construction; the driver never switches methods
// mid-flight except to re-seed history after a velocity discontinuity.
type Solver struct {
	Single SingleStep
	Multi  MultiStep

	// SeedSteps is how many single steps fill the history from one
	// initial condition.
	SeedSteps int
}

// NewSolver returns the standard pairing: RK4 bootstrap feeding a 4th-order
// Adams-Bashforth/Adams-Moulton predictor-corrector.
func NewSolver() *Solver {
	return &Solver{
		Single:    RK4{},
		Multi:     AdamsPC{},
		SeedSteps: historyDepth - 1,
	}
}

// Bootstrap seeds the history buffer by advancing SeedSteps single steps
// from the trajectory's newest sample. Afterwards the history holds four
// consecutive samples newest-first and the trajectory holds the matching
// positions.
func (s *Solver) Bootstrap(p *core.Parameters, traj *Trajectory, dt float64) {
	for i := 0; i < s.SeedSteps; i++ {
		s.Single.Step(p, traj, dt)
	}
}
