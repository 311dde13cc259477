package bignum

import (
	"fmt"
	"math/big"
)

// loop guards an iterative series evaluation. It watches the delta between
// successive partial results and declares convergence when the delta hits
// zero or stalls; it errors out when the iteration ceiling is reached.
type loop struct {
	name          string // series name, for diagnostics
	i             uint64 // iteration count
	maxIterations uint64
	stallCount    int // iterations since |delta| changed
	prevZ         *big.Float
	delta         *big.Float
	prevDelta     *big.Float
}

// newLoop returns a loop checker for a series evaluated at the given
// mantissa width. itersPerBit sizes the ceiling in iterations per mantissa
// bit, so callers can ignore the precision setting.
func newLoop(name string, x *big.Float, bits uint, itersPerBit uint) *loop {
	return &loop{
		name:          name,
		maxIterations: 10 + uint64(itersPerBit)*uint64(bits),
		prevZ:         new(big.Float).SetPrec(bits),
		delta:         new(big.Float).SetPrec(bits).Set(x),
		prevDelta:     new(big.Float).SetPrec(bits),
	}
}

// done reports whether the series has converged on z. It returns
// ErrNoConvergence once the iteration ceiling is exhausted.
func (l *loop) done(z *big.Float) (bool, error) {
	l.delta.Sub(l.prevZ, z)
	switch l.delta.Sign() {
	case 0:
		return true, nil
	case -1:
		// Convergence can oscillate when the calculation is nearly done
		// and we are running out of bits. Track |delta| only.
		l.delta.Neg(l.delta)
	}
	if l.delta.Cmp(l.prevDelta) == 0 {
		// The delta can bounce between the same two magnitudes near the
		// end; require a few repeats before calling it converged.
		l.stallCount++
		if l.stallCount > 3 {
			return true, nil
		}
	} else {
		l.stallCount = 0
	}
	l.i++
	if l.i == l.maxIterations {
		return false, fmt.Errorf("%s: %d iterations: %w", l.name, l.maxIterations, ErrNoConvergence)
	}
	l.prevDelta.Set(l.delta)
	l.prevZ.Set(z)
	return false, nil
}
