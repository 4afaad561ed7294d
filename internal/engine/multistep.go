package engine

import "github.com/stepshot/stepshot/pkg/core"

// 4th-order Adams weights, applied to the sample window newest-first and
// scaled by dt/24.
var (
	bashforthWeights = [historyDepth]float64{55, -59, 37, -9}
	moultonWeights   = [historyDepth]float64{9, 19, -5, 1}
)

// bashforth is the explicit AB4 predictor increment over a full window.
func bashforth(window [historyDepth]core.Point, dt float64) core.Point {
	return core.Sum(
		window[0].Scale(bashforthWeights[0]),
		window[1].Scale(bashforthWeights[1]),
		window[2].Scale(bashforthWeights[2]),
		window[3].Scale(bashforthWeights[3]),
	).Scale(dt / 24.0)
}

// moulton is the implicit-style AM4 corrector increment: the predicted
// newest derivative plus the three most recent stored samples. Only the
// front three window entries are read.
func moulton(window [historyDepth]core.Point, pred core.Point, dt float64) core.Point {
	return core.Sum(
		pred.Scale(moultonWeights[0]),
		window[0].Scale(moultonWeights[1]),
		window[1].Scale(moultonWeights[2]),
		window[2].Scale(moultonWeights[3]),
	).Scale(dt / 24.0)
}

// AdamsPC is the 4th-order Adams-Bashforth/Adams-Moulton
// predictor-corrector. It never reads further back than the four stored
// samples.
type AdamsPC struct{}

// Step advances one fixed step: predict velocity from the stored
// accelerations, evaluate, correct, re-evaluate, then correct the position
// from the velocity window using the corrected velocity as the implicit
// sample. The history shifts by exactly one push. The returned position is
// tentative; the caller classifies it before committing.
func (AdamsPC) Step(p *core.Parameters, pos core.Point, h *History, dt float64) core.Point {
	vels := h.Vels()
	accs := h.Accs()

	vpred := vels[0].Add(bashforth(accs, dt))
	apred := Rate(p, vpred)

	vcorr := vels[0].Add(moulton(accs, apred, dt))
	acorr := Rate(p, vcorr)

	pcorr := pos.Add(moulton(vels, vcorr, dt))

	h.Push(vcorr, acorr)
	return pcorr
}
