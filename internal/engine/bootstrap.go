package engine

import "github.com/stepshot/stepshot/pkg/core"

// RK4 is the classical 4th-order single-step method. Each step makes four
// weighted kinematics evaluations: at the start, at two midpoints using
// half-step predictions, and at the endpoint.
type RK4 struct{}

// Step advances the trajectory by dt from its newest history sample.
func (RK4) Step(p *core.Parameters, traj *Trajectory, dt float64) {
	vel := traj.History.Vel(0)

	k1 := Rate(p, vel).Scale(dt)
	v1 := vel.Add(k1.Scale(0.5))

	k2 := Rate(p, v1).Scale(dt)
	v2 := vel.Add(k2.Scale(0.5))

	k3 := Rate(p, v2).Scale(dt)
	v3 := vel.Add(k3)

	k4 := Rate(p, v3).Scale(dt)

	vnew := vel.Add(core.Sum(k1, k2.Scale(2), k3.Scale(2), k4).Scale(1.0 / 6.0))
	anew := Rate(p, vnew)
	traj.History.Push(vnew, anew)

	// Position advances by the Simpson-weighted velocity samples of the
	// same sub-steps.
	posStep := core.Sum(vel, v1.Scale(2), v2.Scale(2), v3).Scale(dt / 6.0)
	traj.Append(traj.Last().Add(posStep))
}
