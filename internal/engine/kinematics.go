package engine

import "github.com/stepshot/stepshot/pkg/core"

// Rate is the kinematics model: it maps a velocity to the acceleration the
// ball experiences at that velocity. Drag opposes the velocity relative to
// the crosswind with magnitude proportional to relative speed squared;
// gravity pulls straight down. Pure; the bootstrap and multistep stages
// must call this and nothing else so their derivative evaluations agree.
func Rate(p *core.Parameters, vel core.Point) core.Point {
	c := p.Drag / p.Mass
	rel := core.Point{X: vel.X - p.Crosswind, Y: vel.Y}
	drag := rel.Scale(-c * rel.Mag())
	return core.Point{X: drag.X, Y: drag.Y - core.Gravity}
}
