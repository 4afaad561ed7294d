package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepshot/stepshot/pkg/core"
)

func benchParams() *core.Parameters {
	return &core.Parameters{
		Mass:           2.7e-3,
		Drag:           5e-4,
		LaunchSpeed:    30.0,
		StepDistance:   6.0,
		StepHeight:     1.0,
		TargetDistance: 8.0,
		WallDistance:   9.0,
		Crosswind:      1.5,
		TimeStep:       1e-3,
		Tolerance:      1e-3,
	}
}

func TestRateZeroDragIsPureGravity(t *testing.T) {
	p := benchParams()
	p.Drag = 0

	a := Rate(p, core.Point{X: 12.5, Y: -3.0})
	assert.Equal(t, 0.0, a.X)
	assert.Equal(t, -core.Gravity, a.Y)
}

func TestRateMatchingCrosswindFeelsNoDrag(t *testing.T) {
	p := benchParams()

	// Moving exactly with the wind, no vertical speed: zero relative
	// velocity, so gravity is the only acceleration.
	a := Rate(p, core.Point{X: p.Crosswind, Y: 0})
	assert.Equal(t, 0.0, a.X)
	assert.Equal(t, -core.Gravity, a.Y)
}

func TestRateAgainstHandComputation(t *testing.T) {
	p := benchParams()
	vel := core.Point{X: 10, Y: 5}

	c := p.Drag / p.Mass
	relX, relY := vel.X-p.Crosswind, vel.Y
	speed := math.Hypot(relX, relY)

	a := Rate(p, vel)
	assert.InDelta(t, -c*speed*relX, a.X, 1e-12)
	assert.InDelta(t, -c*speed*relY-core.Gravity, a.Y, 1e-12)
}

func TestRateDragOpposesRelativeMotion(t *testing.T) {
	p := benchParams()

	// Flying into the wind: relative x velocity is negative, so drag
	// pushes in +x.
	a := Rate(p, core.Point{X: -4, Y: 0})
	assert.Positive(t, a.X)
}
