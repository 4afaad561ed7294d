// pkg/core/events.go
package core

// BoundaryEvent classifies what a single integration step crossed, if
// anything. Exactly one value holds for any step transition.
type BoundaryEvent int

const (
	HitNone BoundaryEvent = iota
	HitFloor
	HitStepWall
	HitStepFloor
	HitBackWall
)

// String returns the event name for logs and storage.
func (e BoundaryEvent) String() string {
	switch e {
	case HitNone:
		return "none"
	case HitFloor:
		return "floor"
	case HitStepWall:
		return "step-wall"
	case HitStepFloor:
		return "step-floor"
	case HitBackWall:
		return "back-wall"
	default:
		return "unknown"
	}
}

// Terminal reports whether the event ends the flight (a landing) as opposed
// to a wall deflection the ball keeps flying after.
func (e BoundaryEvent) Terminal() bool {
	return e == HitFloor || e == HitStepFloor
}

// Wall reports whether the event is a vertical-face crossing.
func (e BoundaryEvent) Wall() bool {
	return e == HitStepWall || e == HitBackWall
}

// CrossingResult is the resolver's output for one boundary crossing:
// the interpolated state at the boundary and the unconsumed part of the
// step's time interval. Produced and consumed within a single driver step.
type CrossingResult struct {
	Pos       Point
	Vel       Point
	Remaining float64
	OK        bool

	// Iterations is how many Newton iterations the root-find used,
	// recorded for observability.
	Iterations int
}

// Outcome is the terminal classification of a completed simulation.
type Outcome int

const (
	// OutcomeLanded means the ball touched down on the floor or the step top.
	OutcomeLanded Outcome = iota
	// OutcomeFailed means boundary resolution failed and the run cannot
	// continue meaningfully.
	OutcomeFailed
)

func (o Outcome) String() string {
	if o == OutcomeLanded {
		return "landed"
	}
	return "failed"
}
