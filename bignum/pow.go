// Package bignum: Pow, Exp and Ln.
//
// Design:
//   - Pow splits the exponent into an exact integer part (binary
//     exponentiation) and a fractional part (x**f == e**(f·ln x)).
//   - Exp is a Taylor series after range reduction by repeated halving;
//     Ln is the Maclaurin series for ln(1-y) on the mantissa plus
//     exponent·ln 2.
//   - All series run with 64 extra mantissa bits and are guarded by the
//     convergence loop; the public result is rounded back to the
//     receiver's precision.

package bignum

import (
	"fmt"
	"math/big"
)

// workBits is the extra mantissa headroom used by series evaluation so
// rounding the final result back to the receiver's precision is clean.
const workBits = 64

// Pow returns x**y at x's precision.
//
// Conventions: x**0 == 1 (including 0**0); 0**y is 0 for y > 0 and +Inf
// for y < 0. A fractional power of a negative base has no real value and
// yields ErrPowDomain.
func (x *Big) Pow(y *Big) (*Big, error) {
	prec := x.prec
	if y.IsZero() {
		return FromInt64(1, prec), nil
	}
	if x.IsZero() {
		if y.IsNegative() {
			return Inf(prec), nil
		}
		return New(prec), nil
	}
	if !y.IsFinite() {
		// Limit form: |x| against 1 decides.
		switch c := x.Abs().Cmp(FromInt64(1, prec)); {
		case c == 0:
			return FromInt64(1, prec), nil
		case (c > 0) != y.IsNegative():
			return Inf(prec), nil
		default:
			return New(prec), nil
		}
	}
	if !x.IsFinite() {
		if y.IsNegative() {
			return New(prec), nil
		}
		if x.IsNegative() && !y.IsInt() {
			return nil, fmt.Errorf("Pow(%s, %s): %w", x, y, ErrPowDomain)
		}
		if x.IsNegative() && isOddInt(y) {
			return wrap(newFloat(prec).SetInf(true), prec), nil
		}
		return Inf(prec), nil
	}
	if x.IsNegative() && !y.IsInt() {
		return nil, fmt.Errorf("Pow(%s, %s): %w", x, y, ErrPowDomain)
	}

	bits := mantissaBits(prec) + workBits
	bx := new(big.Float).SetPrec(bits).Set(x.val)
	by := new(big.Float).SetPrec(bits).Set(y.val)
	z, err := powFloat(bx, by, bits)
	if err != nil {
		return nil, err
	}
	return wrap(newFloat(prec).Set(z), prec), nil
}

// Exp returns e**x at x's precision.
func (x *Big) Exp() (*Big, error) {
	if !x.IsFinite() {
		if x.IsNegative() {
			return New(x.prec), nil
		}
		return Inf(x.prec), nil
	}
	bits := mantissaBits(x.prec) + workBits
	z, err := expFloat(new(big.Float).SetPrec(bits).Set(x.val), bits)
	if err != nil {
		return nil, err
	}
	return wrap(newFloat(x.prec).Set(z), x.prec), nil
}

// Ln returns the natural logarithm of x at x's precision.
// Non-positive arguments yield ErrLogDomain.
func (x *Big) Ln() (*Big, error) {
	bits := mantissaBits(x.prec) + workBits
	z, err := logFloat(new(big.Float).SetPrec(bits).Set(x.val), bits)
	if err != nil {
		return nil, err
	}
	return wrap(newFloat(x.prec).Set(z), x.prec), nil
}

// isOddInt reports whether y is an odd integer. y must satisfy IsInt.
func isOddInt(y *Big) bool {
	i, acc := y.val.Int(nil)
	return acc == big.Exact && i.Bit(0) == 1
}

// powFloat computes x**y for finite non-zero x at the given mantissa
// width. x must be positive unless the exponent is an exact integer.
func powFloat(x, y *big.Float, bits uint) (*big.Float, error) {
	positive := true
	fexp := new(big.Float).SetPrec(bits).Set(y)
	if fexp.Sign() < 0 {
		positive = false
		fexp.Neg(fexp)
	}
	// Integer part by binary exponentiation; trunc keeps the fraction
	// in [0, 1) for the series below.
	n, acc := fexp.Int64()
	z := integerPower(x, n, bits)
	if acc != big.Exact {
		frac := new(big.Float).SetPrec(bits).Sub(fexp, new(big.Float).SetPrec(bits).SetInt64(n))
		// x**frac == e**(frac · ln x)
		lx, err := logFloat(new(big.Float).SetPrec(bits).Set(x), bits)
		if err != nil {
			return nil, err
		}
		frac.Mul(frac, lx)
		ez, err := expFloat(frac, bits)
		if err != nil {
			return nil, err
		}
		z.Mul(z, ez)
	}
	if !positive {
		one := new(big.Float).SetPrec(bits).SetInt64(1)
		z.Quo(one, z)
	}
	return z, nil
}

// integerPower returns x**n for n >= 0 by binary exponentiation.
func integerPower(x *big.Float, n int64, bits uint) *big.Float {
	z := new(big.Float).SetPrec(bits).SetInt64(1)
	y := new(big.Float).SetPrec(bits).Set(x)
	for n > 0 {
		if n&1 == 1 {
			// This bit contributes; multiply it into the result.
			z.Mul(z, y)
		}
		y.Mul(y, y)
		n >>= 1
	}
	return z
}

// expFloat computes e**t by Taylor series: 1 + t + t²/2! + t³/3! + …
// The argument is first halved until |t| < 0.5 for fast convergence,
// then the partial sum is squared back the same number of times.
func expFloat(t *big.Float, bits uint) (*big.Float, error) {
	z := new(big.Float).SetPrec(bits).SetInt64(1)
	if t.Sign() == 0 {
		return z, nil
	}
	x := new(big.Float).SetPrec(bits).Set(t)
	shifts := 0
	if e := x.MantExp(nil); e > -1 {
		shifts = e + 1
		x.SetMantExp(x, -shifts)
	}

	// Intermediates, allocated once.
	xN := new(big.Float).SetPrec(bits).Set(x)
	term := new(big.Float).SetPrec(bits)
	n := new(big.Float).SetPrec(bits)
	nFactorial := new(big.Float).SetPrec(bits).SetInt64(1)

	l := newLoop("exp", x, bits, 4)
	for i := uint64(1); ; i++ {
		term.Quo(xN, nFactorial)
		z.Add(z, term)
		done, err := l.done(z)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		// Advance t**i and i!.
		xN.Mul(xN, x)
		nFactorial.Mul(nFactorial, n.SetUint64(i+1))
	}
	for ; shifts > 0; shifts-- {
		z.Mul(z, z)
	}
	return z, nil
}

// logFloat computes ln(t) for t > 0. The argument is split into mantissa
// and binary exponent, the Maclaurin series handles the mantissa, and
// exp·ln 2 restores the exponent contribution.
func logFloat(t *big.Float, bits uint) (*big.Float, error) {
	if t.Sign() <= 0 {
		return nil, ErrLogDomain
	}
	if t.IsInf() {
		return new(big.Float).SetPrec(bits).SetInf(false), nil
	}
	one := new(big.Float).SetPrec(bits).SetInt64(1)
	x := new(big.Float).SetPrec(bits).Set(t)
	if x.Cmp(one) == 0 {
		return new(big.Float).SetPrec(bits), nil
	}
	// The series wants x < 1, and ln(1/x) == -ln x.
	invert := false
	if x.Cmp(one) > 0 {
		invert = true
		x.Quo(one, x)
	}
	// x = mant · 2**exp2 with mant in [0.5, 1), so
	// ln x = ln mant + exp2 · ln 2.
	mant := new(big.Float).SetPrec(bits)
	exp2 := x.MantExp(mant)
	z, err := logSeries(mant, bits)
	if err != nil {
		return nil, err
	}
	if exp2 != 0 {
		half := new(big.Float).SetPrec(bits).SetFloat64(0.5)
		lnHalf, err := logSeries(half, bits)
		if err != nil {
			return nil, err
		}
		// ln 2 == -ln ½.
		e := new(big.Float).SetPrec(bits).SetInt64(int64(exp2))
		e.Mul(e, lnHalf.Neg(lnHalf))
		z.Add(z, e)
	}
	if invert {
		z.Neg(z)
	}
	return z, nil
}

// logSeries evaluates ln m for m in [0.5, 1) via the Maclaurin series
// ln(1-y) = -y - y²/2 - y³/3 - … with y = 1-m in (0, 0.5].
func logSeries(m *big.Float, bits uint) (*big.Float, error) {
	y := new(big.Float).SetPrec(bits).SetInt64(1)
	y.Sub(y, m)
	if y.Sign() == 0 {
		return new(big.Float).SetPrec(bits), nil
	}

	yN := new(big.Float).SetPrec(bits).Set(y)
	term := new(big.Float).SetPrec(bits)
	n := new(big.Float).SetPrec(bits)
	z := new(big.Float).SetPrec(bits)

	// Slowest-converging series in the package; widen the ceiling.
	l := newLoop("log", m, bits, 40)
	for i := uint64(1); ; i++ {
		term.Quo(yN, n.SetUint64(i))
		z.Sub(z, term)
		done, err := l.done(z)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		// Advance y**i.
		yN.Mul(yN, y)
	}
	return z, nil
}
