// Package bignum provides an immutable arbitrary-precision real number,
// Big, built on math/big.Float.
//
// Every Big value carries its own working precision expressed in
// significant decimal digits; there is no global precision register.
// Operations never mutate their operands: each call allocates and returns
// a fresh value rounded to the receiver's precision. Two values of
// different precision may be combined; the receiver's precision wins.
//
// The surface is intentionally narrow: construction, the usual field
// arithmetic (Add/Sub/Mul/Quo/Neg/Abs), truncated remainder (Mod),
// comparison and classification predicates, precision re-targeting
// (WithPrec, ToPrec), and the transcendental trio Pow/Exp/Ln needed for
// real nth-root extraction. Anything fancier belongs in a dedicated
// numeric library.
//
// All user-triggered failure modes return package sentinels matched via
// errors.Is; panics are reserved for programmer errors (e.g. a zero
// precision passed to a constructor).
package bignum
