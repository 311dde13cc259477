// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered error
// conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (or index arity) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between the two
	// operands of an elementwise kernel.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument)
	// was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNotTwoDimensional indicates a Dense of rank != 2 was supplied to
	// a kernel that pairs it with a (strictly 2-d) Sparse.
	ErrNotTwoDimensional = errors.New("matrix: matrix is not two-dimensional")

	// ErrRaggedNested indicates that a nested sequence has inconsistent
	// lengths along one of its dimensions.
	ErrRaggedNested = errors.New("matrix: ragged nested sequence")

	// ErrBadCell indicates a nested-sequence leaf (or triplet value) that
	// is not a supported scalar kind.
	ErrBadCell = errors.New("matrix: unsupported cell value")

	// ErrDuplicateCoordinate indicates two stored sparse entries share the
	// same (row, column) coordinate.
	ErrDuplicateCoordinate = errors.New("matrix: duplicate coordinate")
)

// matrixErrorf wraps an underlying sentinel with operation context.
// Callers still match the sentinel via errors.Is.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
