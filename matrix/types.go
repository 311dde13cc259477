// Package matrix: domain types shared by the storage layer and kernels.
// This file intentionally contains ONLY domain-facing types; errors live
// in errors.go and shape checks in validators.go per the package
// conventions.

package matrix

import "github.com/katalvlaran/rootwise/bignum"

// Scalar is the closed element domain of a matrix cell: a native Float or
// an arbitrary-precision *bignum.Big. The two predicates are exactly what
// sparse storage decisions need; all other arithmetic is the business of
// the operation applied by a kernel.
type Scalar interface {
	// IsZero reports whether the value equals zero.
	IsZero() bool
	// IsNegative reports whether the value is strictly below zero.
	IsNegative() bool
}

// Float is a native double-precision scalar.
type Float float64

// IsZero reports whether f == 0.
func (f Float) IsZero() bool { return f == 0 }

// IsNegative reports whether f < 0.
func (f Float) IsNegative() bool { return f < 0 }

// Zero is the implicit-zero value substituted for unstored sparse
// coordinates during traversal.
func Zero() Scalar { return Float(0) }

// Op is a binary operation applied elementwise by the traversal kernels.
// It must be pure; kernels may invoke it in any coordinate order that the
// storage layout dictates (orders are deterministic per kernel).
type Op func(x, y Scalar) (Scalar, error)

// compile-time check: bignum values are matrix scalars.
var _ Scalar = (*bignum.Big)(nil)
