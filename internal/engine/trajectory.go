package engine

import (
	"errors"

	"github.com/stepshot/stepshot/pkg/core"
)

// DefaultCapacity is the initial position capacity of a trajectory.
const DefaultCapacity = 1024

// growthFactor is the multiplicative capacity growth applied when an append
// would overflow. Callers rely on the amortized O(1) append this gives.
const growthFactor = 1.6

// ErrZeroCapacity is returned when a trajectory is created with no room.
var ErrZeroCapacity = errors.New("trajectory capacity must be positive")

// Trajectory is the growable record of one simulated flight: every sampled
// position in step order, plus the fixed-depth velocity/acceleration history
// the multistep integrator works from. A trajectory is owned by a single
// simulation run and never shared while being built.
type Trajectory struct {
	History History

	pos  []core.Point
	size int
}

// NewTrajectory creates an empty trajectory with the given initial capacity.
func NewTrajectory(capacity int) (*Trajectory, error) {
	if capacity <= 0 {
		return nil, ErrZeroCapacity
	}
	return &Trajectory{pos: make([]core.Point, 0, capacity)}, nil
}

// Append stores the next position, growing the backing store by the growth
// factor if full. Previously stored positions are never moved relative to
// their indices or dropped.
func (t *Trajectory) Append(p core.Point) {
	if t.size == cap(t.pos) {
		t.grow()
	}
	t.pos = t.pos[:t.size+1]
	t.pos[t.size] = p
	t.size++
}

func (t *Trajectory) grow() {
	newCap := int(float64(cap(t.pos)) * growthFactor)
	if newCap <= cap(t.pos) {
		newCap = cap(t.pos) + 1
	}
	grown := make([]core.Point, t.size, newCap)
	copy(grown, t.pos)
	t.pos = grown
}

// At returns the position stored at step index i.
func (t *Trajectory) At(i int) core.Point { return t.pos[i] }

// Len returns the number of stored positions.
func (t *Trajectory) Len() int { return t.size }

// Cap returns the current capacity of the backing store.
func (t *Trajectory) Cap() int { return cap(t.pos) }

// Last returns the most recently appended position.
func (t *Trajectory) Last() core.Point { return t.pos[t.size-1] }

// Positions returns a copy of all stored positions in step order.
func (t *Trajectory) Positions() []core.Point {
	out := make([]core.Point, t.size)
	copy(out, t.pos)
	return out
}
