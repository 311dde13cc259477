// Package bignum: the Big value, construction and precision model.
//
// Purpose:
//   - Carry precision per value, in significant decimal digits, converted
//     once to mantissa bits for the underlying big.Float.
//   - Keep values immutable: constructors and operations always allocate.
//
// Determinism:
//   - Mantissa width is a pure function of the digit count; identical
//     inputs at identical precision always produce identical bits.

package bignum

import (
	"fmt"
	"math"
	"math/big"
)

// DefaultPrecision is the significant-digit budget used by callers that
// have no better idea. 64 digits comfortably covers double precision with
// a wide safety margin while keeping series evaluation cheap.
const DefaultPrecision = 64

// log2of10 converts decimal digits to binary mantissa bits.
const log2of10 = 3.321928094887362

// guardBits pads the mantissa so that decimal rounding at the requested
// digit count is not corrupted by binary truncation.
const guardBits = 8

// Big is an immutable arbitrary-precision real number with an explicit
// significant-decimal-digit precision.
type Big struct {
	val  *big.Float // never nil; mantissa width = mantissaBits(prec)
	prec uint32     // significant decimal digits, >= 1
}

// mantissaBits returns the big.Float mantissa width for prec decimal digits.
func mantissaBits(prec uint32) uint {
	return uint(math.Ceil(float64(prec)*log2of10)) + guardBits
}

// checkPrec panics on a zero precision. A zero digit budget is a
// programmer error, mirroring option validation elsewhere in the module.
func checkPrec(prec uint32) {
	if prec == 0 {
		panic("bignum: precision must be >= 1 significant digit")
	}
}

// newFloat allocates a zero big.Float with the mantissa width for prec.
func newFloat(prec uint32) *big.Float {
	return new(big.Float).SetPrec(mantissaBits(prec))
}

// wrap packages a raw big.Float (already at the right mantissa width)
// into a Big at the given precision.
func wrap(f *big.Float, prec uint32) *Big {
	return &Big{val: f, prec: prec}
}

// New returns zero at the given precision.
func New(prec uint32) *Big {
	checkPrec(prec)
	return wrap(newFloat(prec), prec)
}

// FromInt64 returns v at the given precision.
func FromInt64(v int64, prec uint32) *Big {
	checkPrec(prec)
	return wrap(newFloat(prec).SetInt64(v), prec)
}

// FromFloat64 returns v at the given precision.
// NaN is not representable and yields ErrNaN.
func FromFloat64(v float64, prec uint32) (*Big, error) {
	checkPrec(prec)
	if math.IsNaN(v) {
		return nil, ErrNaN
	}
	return wrap(newFloat(prec).SetFloat64(v), prec), nil
}

// Parse interprets s as a decimal floating-point literal at the given
// precision. Returns ErrParse when s is not a number.
func Parse(s string, prec uint32) (*Big, error) {
	checkPrec(prec)
	f, ok := newFloat(prec).SetString(s)
	if !ok {
		return nil, fmt.Errorf("Parse(%q): %w", s, ErrParse)
	}
	return wrap(f, prec), nil
}

// Inf returns +Inf at the given precision.
func Inf(prec uint32) *Big {
	checkPrec(prec)
	return wrap(newFloat(prec).SetInf(false), prec)
}

// Prec reports the value's precision in significant decimal digits.
func (x *Big) Prec() uint32 { return x.prec }

// Sign returns -1, 0 or +1 according to the sign of x.
func (x *Big) Sign() int { return x.val.Sign() }

// IsZero reports whether x == 0.
func (x *Big) IsZero() bool { return x.val.Sign() == 0 }

// IsNegative reports whether x < 0.
func (x *Big) IsNegative() bool { return x.val.Sign() < 0 }

// IsFinite reports whether x is neither +Inf nor -Inf.
func (x *Big) IsFinite() bool { return !x.val.IsInf() }

// IsInt reports whether x is an exact integer.
func (x *Big) IsInt() bool { return x.val.IsInt() }

// Float64 returns the nearest float64 to x (±Inf maps to ±Inf).
func (x *Big) Float64() float64 {
	f, _ := x.val.Float64()
	return f
}

// Cmp compares x and y: -1 if x < y, 0 if x == y, +1 if x > y.
func (x *Big) Cmp(y *Big) int { return x.val.Cmp(y.val) }

// String renders x with up to Prec significant digits.
func (x *Big) String() string {
	return x.val.Text('g', int(x.prec))
}

// float returns a copy of the underlying big.Float at the mantissa width
// for prec, so callers can mutate it without aliasing the receiver.
func (x *Big) float(prec uint32) *big.Float {
	return newFloat(prec).Set(x.val)
}
