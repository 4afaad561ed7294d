package engine

import (
	"math"

	"github.com/stepshot/stepshot/pkg/core"
)

// newtonMaxIter caps the Newton root-find inside boundary resolution.
// Hitting the cap is reported as a failed resolution, never papered over.
const newtonMaxIter = 256

// polyEval evaluates the polynomial with coefficients c (highest degree
// first) at x using Horner's method.
func polyEval(c []float64, x float64) float64 {
	result := c[0]
	for _, ci := range c[1:] {
		result = result*x + ci
	}
	return result
}

// nevilleEval evaluates the unique polynomial through the points (t[i],
// y[i]) at x by Neville's recursion, without forming coefficients.
// len(t) == len(y) == 3 for the resolver's 3-sample windows.
func nevilleEval(t, y []float64, x float64) float64 {
	n := len(t)
	q := make([]float64, n)
	copy(q, y)

	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			c := t[i] - t[i+k]
			q[i] = ((x-t[i+k])*q[i] + (t[i]-x)*q[i+1]) / c
		}
	}
	return q[0]
}

// Resolve recovers the exact state at which the step from curr to next
// crossed the boundary. prev/curr/next are the three most recent positions
// (oldest first) and vprev/vcurr/vnext the matching velocities; their
// natural time offsets are -dt, 0, +dt relative to curr. axis is the axis
// the boundary constrains and boundary its coordinate there.
//
// A quadratic through the three boundary-axis offsets is fitted by
// closed-form finite differences (the abscissas are equally spaced), its
// root found by Newton iteration from the step midpoint, and the free-axis
// position plus both velocity components interpolated at the root by
// Neville's method. The boundary axis of the result is pinned to the
// boundary itself; a floor-type boundary is pinned a tolerance inside the
// arena so the next step starts strictly on the legal side, while wall
// pins stay exact.
//
// On any failure (non-positive dt, or Newton not converging within the
// iteration cap) the result reports OK=false with the coarse pre-step
// state; the caller must treat that as fatal.
func Resolve(p *core.Parameters, prev, curr, next core.Point,
	vprev, vcurr, vnext core.Point, dt float64,
	axis core.Axis, boundary float64) core.CrossingResult {

	result := core.CrossingResult{Pos: curr, Vel: vcurr}

	// Degenerate step size would divide by zero below.
	if dt <= 0 {
		return result
	}

	t := []float64{-dt, 0.0, dt}

	free := axis.Other()
	pos := []float64{prev.Component(free), curr.Component(free), next.Component(free)}
	vx := []float64{vprev.X, vcurr.X, vnext.X}
	vy := []float64{vprev.Y, vcurr.Y, vnext.Y}

	// Boundary-axis offsets; the fitted quadratic's root is the crossing.
	r := []float64{
		prev.Component(axis) - boundary,
		curr.Component(axis) - boundary,
		next.Component(axis) - boundary,
	}

	// Unique quadratic a·t² + b·t + c through the three equally spaced
	// samples, by finite differences.
	a := (r[0] - 2.0*r[1] + r[2]) / (2.0 * dt * dt)
	b := (r[2] - r[0]) / (2.0 * dt)
	c := r[1]

	coeff := []float64{a, b, c}
	deriv := []float64{2.0 * a, b}

	// Newton's method from the midpoint of the step.
	ti := dt / 2.0
	iter := 0
	for ; iter < newtonMaxIter; iter++ {
		residual := polyEval(coeff, ti)
		if math.Abs(residual) < p.Tolerance {
			break
		}
		ti = ti - residual/polyEval(deriv, ti)
	}
	result.Iterations = iter
	if iter == newtonMaxIter {
		return result
	}

	result.Remaining = dt - ti

	vxInt := nevilleEval(t, vx, ti)
	vyInt := nevilleEval(t, vy, ti)
	freeInt := nevilleEval(t, pos, ti)

	if axis == core.AxisX {
		result.Pos = core.Point{X: boundary, Y: freeInt}
	} else {
		result.Pos = core.Point{X: freeInt, Y: boundary - p.Tolerance}
	}
	result.Vel = core.Point{X: vxInt, Y: vyInt}
	result.OK = true

	return result
}
