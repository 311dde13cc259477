// Package matrix: centralized validation checks.
//
// Purpose:
//   - Provide a single, canonical source of truth for nil/shape checks.
//   - Keep kernels minimal by delegating operand validation here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with an operation tag.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

// ValidateDensePair ensures both Dense operands are non-nil and share an
// identical shape vector. Complexity: O(rank).
func ValidateDensePair(a, b *Dense) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if !sameShape(a.shape, b.shape) {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateDenseSparsePair ensures the Dense operand is a non-nil rank-2
// matrix matching the Sparse operand's shape. Complexity: O(1).
func ValidateDenseSparsePair(d *Dense, s *Sparse) error {
	if d == nil || s == nil {
		return ErrNilMatrix
	}
	if d.Rank() != 2 {
		return ErrNotTwoDimensional
	}
	if d.Rows() != s.Rows() || d.Cols() != s.Cols() {
		return ErrDimensionMismatch
	}
	return nil
}

// ValidateSparsePair ensures both Sparse operands are non-nil and share
// the same dimensions. Complexity: O(1).
func ValidateSparsePair(a, b *Sparse) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}
	return nil
}
