// Package bignum: field arithmetic and precision re-targeting.
//
// Every method allocates its result at the receiver's precision and never
// touches either operand. Infallible operations return *Big directly;
// operations with data-dependent undefined cases return (*Big, error).

package bignum

import "fmt"

// Add returns x + y at x's precision.
func (x *Big) Add(y *Big) *Big {
	return wrap(newFloat(x.prec).Add(x.val, y.val), x.prec)
}

// Sub returns x - y at x's precision.
func (x *Big) Sub(y *Big) *Big {
	return wrap(newFloat(x.prec).Sub(x.val, y.val), x.prec)
}

// Mul returns x * y at x's precision.
func (x *Big) Mul(y *Big) *Big {
	return wrap(newFloat(x.prec).Mul(x.val, y.val), x.prec)
}

// Neg returns -x.
func (x *Big) Neg() *Big {
	return wrap(newFloat(x.prec).Neg(x.val), x.prec)
}

// Abs returns |x|.
func (x *Big) Abs() *Big {
	return wrap(newFloat(x.prec).Abs(x.val), x.prec)
}

// Quo returns x / y at x's precision.
// x/0 yields a signed infinity; the indeterminate forms 0/0 and Inf/Inf
// yield ErrDivisionUndefined.
func (x *Big) Quo(y *Big) (*Big, error) {
	if x.IsZero() && y.IsZero() {
		return nil, fmt.Errorf("Quo(0, 0): %w", ErrDivisionUndefined)
	}
	if !x.IsFinite() && !y.IsFinite() {
		return nil, fmt.Errorf("Quo(Inf, Inf): %w", ErrDivisionUndefined)
	}
	if y.IsZero() {
		// big.Float panics on x/0; the signed-infinity result is the
		// useful convention here (1/0 in inverted-root paths).
		neg := x.IsNegative()
		return wrap(newFloat(x.prec).SetInf(neg), x.prec), nil
	}
	return wrap(newFloat(x.prec).Quo(x.val, y.val), x.prec), nil
}

// Mod returns the truncated remainder x - y*trunc(x/y) at x's precision.
// The remainder takes the sign of x, matching math.Mod. x must be finite
// and y non-zero; otherwise ErrDivisionUndefined.
func (x *Big) Mod(y *Big) (*Big, error) {
	if y.IsZero() {
		return nil, fmt.Errorf("Mod(x, 0): %w", ErrDivisionUndefined)
	}
	if !x.IsFinite() {
		return nil, fmt.Errorf("Mod(Inf, y): %w", ErrDivisionUndefined)
	}
	if !y.IsFinite() {
		// Finite x modulo an infinite modulus is x itself.
		return wrap(x.float(x.prec), x.prec), nil
	}
	// q = trunc(x / y), computed a few digits wide so the truncation is
	// exact for any quotient the remainder test cares about.
	q := newFloat(x.prec+2).Quo(x.val, y.val)
	i, _ := q.Int(nil) // trunc toward zero
	q.SetInt(i)
	r := newFloat(x.prec).Mul(q, y.val)
	r.Sub(x.val, r)
	return wrap(newFloat(x.prec).Set(r), x.prec), nil
}

// WithPrec returns a copy of x carrying precision p. The mantissa is
// re-rounded to p's bit width; use it to widen before a computation or to
// narrow a final result.
func (x *Big) WithPrec(p uint32) *Big {
	checkPrec(p)
	return wrap(x.float(p), p)
}

// ToPrec rounds x to p significant decimal digits and returns the result
// at precision p. Unlike WithPrec, rounding happens in decimal, so the
// value prints identically at its new digit budget.
func (x *Big) ToPrec(p uint32) *Big {
	checkPrec(p)
	if !x.IsFinite() {
		return wrap(x.float(p), p)
	}
	f, _ := newFloat(p).SetString(x.val.Text('g', int(p)))
	return wrap(f, p)
}
