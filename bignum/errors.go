// Package bignum: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// bignum package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for programmer errors
// (zero precision, NaN literals).

package bignum

import "errors"

var (
	// ErrParse is returned when a string cannot be interpreted as a
	// decimal floating-point literal.
	ErrParse = errors.New("bignum: cannot parse value")

	// ErrNaN is returned when an operation would require representing
	// NaN, which big.Float cannot hold (e.g. FromFloat64(math.NaN())).
	ErrNaN = errors.New("bignum: NaN is not representable")

	// ErrDivisionUndefined is returned for quotient or remainder forms
	// with no defined value: 0/0, Inf/Inf, x mod 0, Inf mod y.
	ErrDivisionUndefined = errors.New("bignum: division undefined")

	// ErrLogDomain is returned by Ln for non-positive arguments.
	ErrLogDomain = errors.New("bignum: log of non-positive value")

	// ErrPowDomain is returned by Pow for a fractional power of a
	// negative base (the real-valued result does not exist).
	ErrPowDomain = errors.New("bignum: fractional power of negative base")

	// ErrNoConvergence is returned when a series evaluation fails to
	// converge within its iteration ceiling. Callers should never see
	// this for finite, in-range inputs.
	ErrNoConvergence = errors.New("bignum: series did not converge")
)
