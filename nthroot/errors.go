// Package nthroot: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// nthroot package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. Shape disagreements surface as
// matrix.ErrDimensionMismatch from the traversal kernels.

package nthroot

import "errors"

var (
	// ErrInvalidRoot is returned when the root is exactly zero.
	ErrInvalidRoot = errors.New("nthroot: root must be non-zero")

	// ErrInvalidRootParity is returned when the base is negative and the
	// absolute root is not an odd integer; no real root exists then.
	ErrInvalidRootParity = errors.New("nthroot: root must be an odd integer when base is negative")

	// ErrNonInvertibleZero is returned when a sparse operand with implicit
	// zeros is combined under a policy whose true result at those
	// coordinates is not zero (a sparse root side, or a negative root
	// broadcast that would invert implicit zeros to +Inf).
	ErrNonInvertibleZero = errors.New("nthroot: implicit zeros cannot represent the result; densify the sparse operand")

	// ErrUnsupportedType is returned for operand types outside the
	// supported set. Complex operands belong to a dedicated complex-aware
	// root function, not this entry point.
	ErrUnsupportedType = errors.New("nthroot: unsupported operand type")
)
