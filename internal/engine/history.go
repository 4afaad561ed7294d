package engine

import "github.com/stepshot/stepshot/pkg/core"

// historyDepth is the number of past samples the multistep method needs.
const historyDepth = 4

// History holds the four most recent (velocity, acceleration) samples of a
// trajectory, newest first. Pushing a new sample evicts the oldest. The
// buffer always reads as exactly four samples once initialized.
type History struct {
	vel [historyDepth]core.Point
	acc [historyDepth]core.Point
}

// Reset clears the buffer and installs the initial sample as the newest
// entry; older slots are zeroed.
func (h *History) Reset(vel, acc core.Point) {
	*h = History{}
	h.vel[0] = vel
	h.acc[0] = acc
}

// Push inserts a new newest sample, shifting the rest back one age and
// evicting the oldest.
func (h *History) Push(vel, acc core.Point) {
	for i := historyDepth - 1; i > 0; i-- {
		h.vel[i] = h.vel[i-1]
		h.acc[i] = h.acc[i-1]
	}
	h.vel[0] = vel
	h.acc[0] = acc
}

// Vel returns the velocity sample of age i (0 = newest).
func (h *History) Vel(i int) core.Point { return h.vel[i] }

// Acc returns the acceleration sample of age i (0 = newest).
func (h *History) Acc(i int) core.Point { return h.acc[i] }

// Vels returns a copy of the velocity window, newest first.
func (h *History) Vels() [historyDepth]core.Point { return h.vel }

// Accs returns a copy of the acceleration window, newest first.
func (h *History) Accs() [historyDepth]core.Point { return h.acc }
