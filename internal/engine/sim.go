// Package engine integrates ball trajectories through the stepped arena.
//
// Each run advances in fixed timesteps with a 4th-order Adams-Bashforth /
// Adams-Moulton predictor-corrector, bootstrapped by RK4 so the multistep
// window has four samples to work from. After every tentative step the
// transition is classified against the arena boundaries; a crossing is
// resolved to its exact state by fitting a local quadratic through the
// three most recent samples and Newton-iterating to the crossing instant.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/stepshot/stepshot/internal/metrics"
	"github.com/stepshot/stepshot/pkg/core"
)

// ErrResolveFailed is returned when a boundary crossing cannot be resolved.
// The run cannot continue meaningfully without a trustworthy crossing
// state, so this is fatal for the trajectory.
var ErrResolveFailed = errors.New("boundary resolution failed")

type simState int

const (
	stateBootstrapping simState = iota
	stateIntegrating
	stateLanded
	stateFailed
)

// Result is a completed simulation: the full trajectory, the terminal
// classification, and the landing state when the run landed.
type Result struct {
	Trajectory *Trajectory
	Outcome    core.Outcome
	Event      core.BoundaryEvent
	Landing    core.Point
	LandingVel core.Point
}

// Simulator runs independent trajectories against one shared read-only
// Parameters record. The engine itself is single-threaded; callers may run
// one Simulator per goroutine with no locking.
type Simulator struct {
	params *core.Parameters
	solver *Solver
	log    zerolog.Logger
	ins    *metrics.Instruments
}

// NewSimulator validates the parameters and builds a simulator. A nil
// solver selects the standard RK4 + Adams pairing; a nil instruments
// pointer disables metrics.
func NewSimulator(p *core.Parameters, s *Solver, log zerolog.Logger, ins *metrics.Instruments) (*Simulator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		s = NewSolver()
	}
	return &Simulator{params: p, solver: s, log: log, ins: ins}, nil
}

// Run simulates one launch at the given angle (radians) from the origin
// and returns the completed trajectory. A failed boundary resolution
// returns the partial result alongside ErrResolveFailed; it is never
// converted to a default landing.
func (s *Simulator) Run(ctx context.Context, angle float64) (*Result, error) {
	p := s.params
	dt := p.TimeStep

	traj, err := NewTrajectory(DefaultCapacity)
	if err != nil {
		return nil, err
	}

	vel := core.Point{
		X: p.LaunchSpeed * math.Cos(angle),
		Y: p.LaunchSpeed * math.Sin(angle),
	}
	traj.History.Reset(vel, Rate(p, vel))
	traj.Append(core.Point{})

	result := &Result{Trajectory: traj}
	state := stateBootstrapping

	for {
		switch state {
		case stateBootstrapping:
			s.solver.Bootstrap(p, traj, dt)
			s.ins.AddSteps(ctx, int64(s.solver.SeedSteps))
			state = stateIntegrating

		case stateIntegrating:
			pos := traj.Last()
			next := s.solver.Multi.Step(p, pos, &traj.History, dt)
			s.ins.AddSteps(ctx, 1)

			event := Classify(p, pos, next)
			if event == core.HitNone {
				traj.Append(next)
				continue
			}
			s.ins.RecordBoundary(ctx, event.String())

			axis, boundary := boundaryFor(p, event)
			last := traj.Len() - 1
			res := Resolve(p,
				traj.At(last-1), traj.At(last), next,
				traj.History.Vel(2), traj.History.Vel(1), traj.History.Vel(0),
				dt, axis, boundary)
			s.ins.RecordResolution(ctx, res.Iterations)

			if !res.OK {
				result.Event = event
				state = stateFailed
				continue
			}

			if event.Terminal() {
				traj.Append(res.Pos)
				result.Event = event
				result.Landing = res.Pos
				result.LandingVel = res.Vel
				state = stateLanded
				continue
			}

			// Wall deflection: the ball keeps flying with the
			// horizontal velocity reversed. The multistep history is
			// invalid across the velocity discontinuity, so restart
			// from the resolved state: consume the leftover of the
			// interrupted step with the single-step method, then
			// re-seed the window.
			s.log.Debug().
				Str("event", event.String()).
				Float64("x", res.Pos.X).
				Float64("y", res.Pos.Y).
				Float64("remaining", res.Remaining).
				Msg("wall deflection")

			refl := res.Vel
			refl.X = -refl.X
			traj.History.Reset(refl, Rate(p, refl))
			traj.Append(res.Pos)
			if res.Remaining > 0 {
				s.solver.Single.Step(p, traj, res.Remaining)
			}
			state = stateBootstrapping

		case stateLanded:
			result.Outcome = core.OutcomeLanded
			s.ins.RecordRun(ctx, result.Outcome.String())
			s.log.Debug().
				Float64("angle", angle).
				Float64("landingX", result.Landing.X).
				Int("steps", traj.Len()).
				Msg("trajectory landed")
			return result, nil

		case stateFailed:
			result.Outcome = core.OutcomeFailed
			s.ins.RecordRun(ctx, result.Outcome.String())
			return result, fmt.Errorf("resolving %s crossing at angle %.4f: %w",
				result.Event, angle, ErrResolveFailed)
		}
	}
}
