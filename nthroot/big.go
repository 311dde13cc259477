// Package nthroot: the arbitrary-precision scalar kernel.
//
// Identical seven-step policy as the double-precision kernel, computed
// with 2 extra significant digits to absorb precision loss in the
// intermediate power and division steps, then rounded back to the base's
// configured precision.

package nthroot

import (
	"fmt"

	"github.com/katalvlaran/rootwise/bignum"
)

// BigScalar computes the real nth root of a for the given root in
// arbitrary precision. The result carries a's precision.
func BigScalar(a, root *bignum.Big) (*bignum.Big, error) {
	prec := a.Prec()
	work := prec + 2

	r := root.WithPrec(work)
	inverted := r.IsNegative()
	if inverted {
		r = r.Neg()
	}
	if r.IsZero() {
		return nil, fmt.Errorf("BigScalar(%s, 0): %w", a, ErrInvalidRoot)
	}
	if a.IsNegative() {
		two := bignum.FromInt64(2, work)
		m, err := r.Mod(two)
		if err != nil || m.Cmp(bignum.FromInt64(1, work)) != 0 {
			// Fractional, even or infinite roots of a negative base have
			// no real value.
			return nil, fmt.Errorf("BigScalar(%s, %s): %w", a, root, ErrInvalidRootParity)
		}
	}
	if a.IsZero() {
		if inverted {
			return bignum.Inf(prec), nil
		}
		return bignum.New(prec), nil
	}
	if !a.IsFinite() {
		if inverted {
			return bignum.New(prec), nil
		}
		return a.WithPrec(prec), nil
	}

	invRoot, err := bignum.FromInt64(1, work).Quo(r)
	if err != nil {
		return nil, err
	}
	x, err := a.WithPrec(work).Abs().Pow(invRoot)
	if err != nil {
		return nil, err
	}
	if a.IsNegative() {
		// Valid per the parity rule: an odd root preserves sign.
		x = x.Neg()
	}
	if inverted {
		x, err = bignum.FromInt64(1, work).Quo(x)
		if err != nil {
			return nil, err
		}
	}
	return x.ToPrec(prec), nil
}

// BigScalarDefault is BigScalar with the default root of 2, materialized
// at a's precision.
func BigScalarDefault(a *bignum.Big) (*bignum.Big, error) {
	return BigScalar(a, bignum.FromInt64(2, a.Prec()))
}
