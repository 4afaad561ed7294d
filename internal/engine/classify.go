package engine

import "github.com/stepshot/stepshot/pkg/core"

// Classify decides whether the straight step from a to b crossed a physical
// boundary, without knowing the crossing time. The four tests run in a
// fixed order and each unconditionally overwrites the verdict, so on
// overlap the last matching test wins. The conditions are not proven
// geometrically disjoint for every parameter combination; the evaluation
// order is therefore part of the contract and must not be reordered.
// Pure classification; resolution is a separate concern.
func Classify(p *core.Parameters, a, b core.Point) core.BoundaryEvent {
	status := core.HitNone
	ds, hs, dw := p.StepDistance, p.StepHeight, p.WallDistance

	// Hit the front face of the step
	if (a.X < ds && b.X >= ds) && b.Y < hs {
		status = core.HitStepWall
	}

	// Hit the floor before reaching the step
	if (b.X < ds && a.X < ds) && (b.Y <= 0.0 && a.Y > 0.0) {
		status = core.HitFloor
	}

	// Hit the back wall
	if a.X < dw && b.X > dw {
		status = core.HitBackWall
	}

	// Landed on top of the step
	if (b.X >= ds && b.X < dw) && (a.Y > hs && b.Y <= hs) {
		status = core.HitStepFloor
	}

	return status
}

// boundaryFor maps a non-none event to the axis the boundary constrains and
// the boundary's coordinate on that axis. Floor-type events constrain the
// vertical axis, wall-type events the horizontal.
func boundaryFor(p *core.Parameters, ev core.BoundaryEvent) (core.Axis, float64) {
	switch ev {
	case core.HitFloor:
		return core.AxisY, 0.0
	case core.HitStepFloor:
		return core.AxisY, p.StepHeight
	case core.HitStepWall:
		return core.AxisX, p.StepDistance
	default: // core.HitBackWall
		return core.AxisX, p.WallDistance
	}
}
