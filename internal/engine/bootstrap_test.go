package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepshot/stepshot/pkg/core"
)

// With zero drag the field is constant, so one RK4 step must be exact:
// velocity advances by g·dt, position by v·dt + g·dt²/2.
func TestRK4ExactForConstantAcceleration(t *testing.T) {
	p := benchParams()
	p.Drag = 0
	dt := 0.02

	v0 := core.Point{X: 5, Y: 5}
	g := core.Point{X: 0, Y: -core.Gravity}

	traj, err := NewTrajectory(8)
	require.NoError(t, err)
	traj.History.Reset(v0, Rate(p, v0))
	traj.Append(core.Point{})

	RK4{}.Step(p, traj, dt)

	wantVel := v0.Add(g.Scale(dt))
	assert.InDelta(t, wantVel.X, traj.History.Vel(0).X, 1e-12)
	assert.InDelta(t, wantVel.Y, traj.History.Vel(0).Y, 1e-12)

	wantPos := v0.Scale(dt).Add(g.Scale(dt * dt / 2))
	assert.InDelta(t, wantPos.X, traj.Last().X, 1e-12)
	assert.InDelta(t, wantPos.Y, traj.Last().Y, 1e-12)
}

func TestBootstrapFillsHistoryAndTrajectory(t *testing.T) {
	p := benchParams()
	s := NewSolver()

	traj, err := NewTrajectory(8)
	require.NoError(t, err)

	vel := core.Point{X: 20, Y: 15}
	traj.History.Reset(vel, Rate(p, vel))
	traj.Append(core.Point{})

	s.Bootstrap(p, traj, p.TimeStep)

	// Origin plus one position per seed step.
	assert.Equal(t, 1+s.SeedSteps, traj.Len())

	// The window now holds four distinct consecutive samples, newest
	// first, oldest being the launch state.
	assert.Equal(t, vel, traj.History.Vel(historyDepth-1))
	for i := 0; i < historyDepth-1; i++ {
		older := traj.History.Vel(i + 1)
		newer := traj.History.Vel(i)
		assert.NotEqual(t, older, newer)
		assert.Less(t, newer.Y, older.Y, "vertical speed must decay under gravity")
	}
}
