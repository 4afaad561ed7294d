// Package search finds the launch angles whose trajectories land at the
// target distance: a fixed-resolution sweep brackets the sign changes of
// the landing error, then bisection narrows each bracket by re-simulating
// midpoints. Trajectories are independent, so the sweep fans out across a
// worker pool sharing the read-only Parameters; completed runs flow
// through a queue to the storage writer so recording never stalls a
// worker.
package search

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/stepshot/stepshot/internal/config"
	"github.com/stepshot/stepshot/internal/engine"
	"github.com/stepshot/stepshot/internal/metrics"
	"github.com/stepshot/stepshot/internal/queue"
	"github.com/stepshot/stepshot/internal/storage"
	"github.com/stepshot/stepshot/pkg/core"
)

const degToRad = math.Pi / 180.0

// maxBisectIter caps bisection refinement per bracket.
const maxBisectIter = 200

// Solution is one launch angle that lands within tolerance of the target.
type Solution struct {
	Angle   float64 // radians
	Landing core.Point
}

// Searcher runs sweeps and bisection against one parameter set.
type Searcher struct {
	params  *core.Parameters
	cfg     config.SearchConfig
	backend storage.Backend
	log     zerolog.Logger
	sim     *engine.Simulator

	runs   *queue.Queue[*storage.Run]
	notify chan struct{}
}

// New builds a searcher. The simulator is shared across workers; a run
// only touches its own trajectory, so concurrent Run calls are safe.
func New(params *core.Parameters, cfg config.SearchConfig, backend storage.Backend,
	log zerolog.Logger, ins *metrics.Instruments) (*Searcher, error) {

	sim, err := engine.NewSimulator(params, nil, log, ins)
	if err != nil {
		return nil, err
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MaxSolutions <= 0 {
		cfg.MaxSolutions = 4
	}
	return &Searcher{
		params:  params,
		cfg:     cfg,
		backend: backend,
		log:     log,
		sim:     sim,
		runs:    queue.New[*storage.Run](),
		notify:  make(chan struct{}, 1),
	}, nil
}

// FindSolutions runs the full search: sweep, bisection, recording.
func (s *Searcher) FindSolutions(ctx context.Context) ([]Solution, error) {
	if err := s.backend.StartSweep(s.params, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("starting sweep: %w", err)
	}

	var writerWg sync.WaitGroup
	writerWg.Add(1)
	go func() {
		defer writerWg.Done()
		s.writeRuns()
	}()

	sweep, sweepErr := s.Sweep(ctx)

	var solutions []Solution
	var bisectErr error
	if sweepErr == nil {
		solutions, bisectErr = s.Bisect(ctx, sweep)
	}

	close(s.notify)
	writerWg.Wait()

	if sweepErr != nil {
		return nil, sweepErr
	}
	if bisectErr != nil {
		return nil, bisectErr
	}

	angles := make([]float64, len(solutions))
	for i, sol := range solutions {
		angles[i] = sol.Angle
	}
	if err := s.backend.EndSweep(angles); err != nil {
		return nil, fmt.Errorf("ending sweep: %w", err)
	}

	return solutions, nil
}

// Sweep simulates the configured angle range at 1° resolution and returns
// (angle, landing error) pairs ordered by angle.
func (s *Searcher) Sweep(ctx context.Context) ([]core.Point, error) {
	n := int(s.cfg.MaxAngleDeg-s.cfg.MinAngleDeg) + 1
	if n <= 0 {
		return nil, fmt.Errorf("empty angle range [%v, %v]", s.cfg.MinAngleDeg, s.cfg.MaxAngleDeg)
	}

	results := make([]core.Point, n)
	jobs := make(chan int)

	var mu sync.Mutex
	var firstErr error
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	var wg sync.WaitGroup
	for w := 0; w < s.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if failed() {
					continue
				}
				deg := s.cfg.MinAngleDeg + float64(i)
				angle := deg * degToRad

				res, err := s.sim.Run(ctx, angle)
				if err != nil {
					setErr(fmt.Errorf("sweep angle %.1f°: %w", deg, err))
					continue
				}

				landErr := res.Landing.X - s.params.TargetDistance
				results[i] = core.Point{X: angle, Y: landErr}
				s.enqueue(res, angle, landErr, false)
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	s.log.Info().Int("trajectories", n).Msg("Sweep complete")
	return results, nil
}

// Bisect scans the sweep for sign changes of the landing error and
// narrows each bracket until the error is within tolerance, collecting at
// most MaxSolutions angles.
func (s *Searcher) Bisect(ctx context.Context, sweep []core.Point) ([]Solution, error) {
	var solutions []Solution

	left := 0
	for left < len(sweep)-1 && len(solutions) < s.cfg.MaxSolutions {
		right := left + 1
		for right < len(sweep) && sweep[left].Y*sweep[right].Y > 0.0 {
			right++
		}
		if right >= len(sweep) {
			break
		}

		leftAngle, rightAngle := sweep[left].X, sweep[right].X
		leftErr := sweep[left].Y

		// The left bracket may already be a solution.
		landErr := leftErr
		mid := leftAngle
		var landing core.Point
		resolved := false

		for iter := 0; math.Abs(landErr) > s.params.Tolerance; iter++ {
			if iter == maxBisectIter {
				return nil, fmt.Errorf("bisection did not converge in bracket [%.4f, %.4f]",
					leftAngle, rightAngle)
			}

			mid = 0.5 * (leftAngle + rightAngle)
			res, err := s.sim.Run(ctx, mid)
			if err != nil {
				return nil, fmt.Errorf("bisecting at angle %.4f: %w", mid, err)
			}
			landing = res.Landing
			landErr = res.Landing.X - s.params.TargetDistance
			resolved = true
			s.enqueue(res, mid, landErr, math.Abs(landErr) <= s.params.Tolerance)

			if leftErr*landErr <= 0.0 {
				rightAngle = mid
			} else {
				leftAngle = mid
				leftErr = landErr
			}
		}

		if !resolved {
			// Solution straight from the sweep; re-run once for the
			// landing state.
			res, err := s.sim.Run(ctx, mid)
			if err != nil {
				return nil, fmt.Errorf("re-running solution angle %.4f: %w", mid, err)
			}
			landing = res.Landing
			s.enqueue(res, mid, landErr, true)
		}

		s.log.Info().
			Float64("angleDeg", mid/degToRad).
			Float64("landingX", landing.X).
			Msg("Solution found")
		solutions = append(solutions, Solution{Angle: mid, Landing: landing})
		left = right
	}

	return solutions, nil
}

// enqueue hands a completed run to the storage writer.
func (s *Searcher) enqueue(res *engine.Result, angle, landErr float64, solution bool) {
	s.runs.Push(&storage.Run{
		Angle:        angle,
		Outcome:      res.Outcome,
		Event:        res.Event,
		Landing:      res.Landing,
		LandingError: landErr,
		Positions:    res.Trajectory.Positions(),
		TimeStep:     s.params.TimeStep,
		Solution:     solution,
	})
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// writeRuns drains the queue into the backend until notify closes, then
// makes a final drain so nothing queued after the last signal is lost.
func (s *Searcher) writeRuns() {
	drain := func() {
		for _, run := range s.runs.Drain() {
			if err := s.backend.RecordRun(run); err != nil {
				s.log.Error().Err(err).Float64("angle", run.Angle).Msg("Failed to record run")
			}
		}
	}
	for range s.notify {
		drain()
	}
	drain()
}
