package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepshot/stepshot/pkg/core"
)

func TestClassify(t *testing.T) {
	p := benchParams() // step at x=6 height 1, back wall at x=9

	cases := []struct {
		name string
		a, b core.Point
		want core.BoundaryEvent
	}{
		{
			name: "free flight",
			a:    core.Point{X: 1, Y: 2},
			b:    core.Point{X: 1.1, Y: 2.05},
			want: core.HitNone,
		},
		{
			name: "into step front face",
			a:    core.Point{X: 5.99, Y: 0.5},
			b:    core.Point{X: 6.01, Y: 0.49},
			want: core.HitStepWall,
		},
		{
			name: "over the step front face",
			a:    core.Point{X: 5.99, Y: 1.5},
			b:    core.Point{X: 6.01, Y: 1.49},
			want: core.HitNone,
		},
		{
			name: "floor before the step",
			a:    core.Point{X: 3, Y: 0.01},
			b:    core.Point{X: 3.1, Y: -0.01},
			want: core.HitFloor,
		},
		{
			name: "grazing the floor from below stays down",
			a:    core.Point{X: 3, Y: -0.01},
			b:    core.Point{X: 3.1, Y: -0.02},
			want: core.HitNone,
		},
		{
			name: "onto the step top",
			a:    core.Point{X: 7, Y: 1.01},
			b:    core.Point{X: 7.1, Y: 0.99},
			want: core.HitStepFloor,
		},
		{
			name: "back wall",
			a:    core.Point{X: 8.99, Y: 3},
			b:    core.Point{X: 9.01, Y: 2.99},
			want: core.HitBackWall,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(p, tc.a, tc.b))
		})
	}
}

// When a step matches more than one test the later test wins. The order is
// part of the contract, so these pinned verdicts must not change.
func TestClassifyOverlapOrder(t *testing.T) {
	p := benchParams()

	// Crosses the step face and drops below the step top in one step:
	// step-floor is tested after step-wall and takes the verdict.
	a := core.Point{X: 5.9, Y: 1.05}
	b := core.Point{X: 6.05, Y: 0.95}
	assert.Equal(t, core.HitStepFloor, Classify(p, a, b))

	// A single huge step through both the step face and the back wall:
	// back-wall is tested later and wins.
	a = core.Point{X: 5.9, Y: 0.5}
	b = core.Point{X: 9.1, Y: 0.4}
	assert.Equal(t, core.HitBackWall, Classify(p, a, b))
}

func TestBoundaryForAxes(t *testing.T) {
	p := benchParams()

	axis, boundary := boundaryFor(p, core.HitFloor)
	assert.Equal(t, core.AxisY, axis)
	assert.Equal(t, 0.0, boundary)

	axis, boundary = boundaryFor(p, core.HitStepFloor)
	assert.Equal(t, core.AxisY, axis)
	assert.Equal(t, p.StepHeight, boundary)

	axis, boundary = boundaryFor(p, core.HitStepWall)
	assert.Equal(t, core.AxisX, axis)
	assert.Equal(t, p.StepDistance, boundary)

	axis, boundary = boundaryFor(p, core.HitBackWall)
	assert.Equal(t, core.AxisX, axis)
	assert.Equal(t, p.WallDistance, boundary)
}
