// Package nthroot: the type-pair dispatcher.
//
// Design:
//   - The full operand-kind combination set is small and static, so
//     dispatch is an explicit type switch over the closed union
//     {native scalar, *bignum.Big, nested sequence, *matrix.Dense,
//     *matrix.Sparse} rather than an open-ended handler registry.
//   - Policy lives here: density preconditions and the negative-root
//     broadcast guard run before any traversal kernel is invoked, so
//     either the full result is produced or an error is returned before
//     any output exists.
//   - Dispatch priority: nested sequences convert and recurse first, then
//     matrix pairs, then matrix×scalar broadcasts, then plain scalars.

package nthroot

import (
	"fmt"

	"github.com/katalvlaran/rootwise/bignum"
	"github.com/katalvlaran/rootwise/matrix"
)

// NthRoot computes the real nth root of a, elementwise across matrix and
// nested-sequence operands. It takes one or two positional arguments: the
// optional second argument is the root, defaulting to 2 in a's own
// numeric domain.
//
// Accepted operand kinds: float64/float32 and the integer sizes,
// matrix.Float, *bignum.Big, *matrix.Dense, *matrix.Sparse, and nested
// sequences ([]any, []float64, [][]float64, []int). Complex operands are
// rejected with ErrUnsupportedType; use a complex-aware root function
// for those.
//
// Result kinds mirror the inputs: two nested sequences produce a nested
// sequence; any matrix operand produces a matrix (dense if either operand
// was dense); scalars produce float64 or *bignum.Big.
func NthRoot(a any, root ...any) (any, error) {
	switch len(root) {
	case 0:
		return nthRoot(a, defaultRoot(a))
	case 1:
		return nthRoot(a, root[0])
	default:
		// Arity misuse is a programmer error, not a data condition.
		panic("nthroot: NthRoot takes one or two arguments")
	}
}

// defaultRoot materializes the root 2 in a's numeric domain, so the
// single-argument form never mixes domains.
func defaultRoot(a any) any {
	if b, ok := a.(*bignum.Big); ok {
		return bignum.FromInt64(2, b.Prec())
	}
	return float64(2)
}

// nthRoot resolves the runtime kind pair of (a, root) and routes to the
// matching strategy.
func nthRoot(a, root any) (any, error) {
	// Complex operands are a declared terminal for this entry point.
	if err := rejectComplex(a); err != nil {
		return nil, err
	}
	if err := rejectComplex(root); err != nil {
		return nil, err
	}

	// Nested sequences convert to matrices and recurse. Only when both
	// sides were nested does the result convert back.
	aSeq, rSeq := matrix.IsNested(a), matrix.IsNested(root)
	switch {
	case aSeq && rSeq:
		am, err := matrix.FromNested(a)
		if err != nil {
			return nil, err
		}
		rm, err := matrix.FromNested(root)
		if err != nil {
			return nil, err
		}
		res, err := nthRoot(am, rm)
		if err != nil {
			return nil, err
		}
		return res.(*matrix.Dense).Nested(), nil
	case aSeq:
		am, err := matrix.FromNested(a)
		if err != nil {
			return nil, err
		}
		return nthRoot(am, root)
	case rSeq:
		rm, err := matrix.FromNested(root)
		if err != nil {
			return nil, err
		}
		return nthRoot(a, rm)
	}

	switch x := a.(type) {
	case *matrix.Dense:
		switch y := root.(type) {
		case *matrix.Dense:
			return matrix.DenseDense(x, y, rootOp)
		case *matrix.Sparse:
			// Implicit zeros on the root side mean a zero root, which is
			// meaningless; require a fully dense sparse operand.
			if y.Density() < 1 {
				return nil, fmt.Errorf("dense base, sparse root density %g: %w", y.Density(), ErrNonInvertibleZero)
			}
			return matrix.DenseSparse(x, y, rootOp)
		default:
			s, ok := matrix.ScalarOf(root)
			if !ok {
				return nil, fmt.Errorf("root %T: %w", root, ErrUnsupportedType)
			}
			return matrix.DenseScalar(x, s, rootOp, true)
		}

	case *matrix.Sparse:
		switch y := root.(type) {
		case *matrix.Dense:
			if x.Density() < 1 {
				return nil, fmt.Errorf("sparse base density %g, dense root: %w", x.Density(), ErrNonInvertibleZero)
			}
			return matrix.SparseDense(x, y, rootOp)
		case *matrix.Sparse:
			if y.Density() < 1 {
				return nil, fmt.Errorf("sparse base, sparse root density %g: %w", y.Density(), ErrNonInvertibleZero)
			}
			return matrix.SparseSparse(x, y, rootOp)
		default:
			s, ok := matrix.ScalarOf(root)
			if !ok {
				return nil, fmt.Errorf("root %T: %w", root, ErrUnsupportedType)
			}
			// A zero root is invalid at every coordinate, stored or not.
			if s.IsZero() {
				return nil, fmt.Errorf("sparse base, zero root: %w", ErrInvalidRoot)
			}
			// A negative root inverts implicit zeros to +Inf, which the
			// storage cannot represent implicitly.
			if s.IsNegative() && x.Density() < 1 {
				return nil, fmt.Errorf("sparse base density %g, negative root: %w", x.Density(), ErrNonInvertibleZero)
			}
			return matrix.SparseScalar(x, s, rootOp, true)
		}

	default:
		switch y := root.(type) {
		case *matrix.Dense:
			s, ok := matrix.ScalarOf(a)
			if !ok {
				return nil, fmt.Errorf("base %T: %w", a, ErrUnsupportedType)
			}
			return matrix.DenseScalar(y, s, rootOp, false)
		case *matrix.Sparse:
			s, ok := matrix.ScalarOf(a)
			if !ok {
				return nil, fmt.Errorf("base %T: %w", a, ErrUnsupportedType)
			}
			// Implicit zeros on the root side mean a zero root.
			if y.Density() < 1 {
				return nil, fmt.Errorf("scalar base, sparse root density %g: %w", y.Density(), ErrNonInvertibleZero)
			}
			return matrix.SparseScalar(y, s, rootOp, false)
		default:
			sa, ok := matrix.ScalarOf(a)
			if !ok {
				return nil, fmt.Errorf("base %T: %w", a, ErrUnsupportedType)
			}
			sr, ok := matrix.ScalarOf(root)
			if !ok {
				return nil, fmt.Errorf("root %T: %w", root, ErrUnsupportedType)
			}
			res, err := rootOp(sa, sr)
			if err != nil {
				return nil, err
			}
			return native(res), nil
		}
	}
}

// rootOp is the Op threaded through every traversal kernel: per-cell
// numeric-domain resolution plus the scalar kernels. A mixed Float/Big
// pair lifts the Float side into the Big operand's precision (float64 to
// Big is exact); the arbitrary-precision domain wins for that cell.
func rootOp(x, y matrix.Scalar) (matrix.Scalar, error) {
	switch base := x.(type) {
	case matrix.Float:
		switch r := y.(type) {
		case matrix.Float:
			v, err := Scalar(float64(base), float64(r))
			if err != nil {
				return nil, err
			}
			return matrix.Float(v), nil
		case *bignum.Big:
			lifted, err := bignum.FromFloat64(float64(base), r.Prec())
			if err != nil {
				return nil, err
			}
			return bigResult(BigScalar(lifted, r))
		}
	case *bignum.Big:
		switch r := y.(type) {
		case matrix.Float:
			lifted, err := bignum.FromFloat64(float64(r), base.Prec())
			if err != nil {
				return nil, err
			}
			return bigResult(BigScalar(base, lifted))
		case *bignum.Big:
			return bigResult(BigScalar(base, r))
		}
	}
	return nil, fmt.Errorf("cell %T, %T: %w", x, y, ErrUnsupportedType)
}

// bigResult repackages the typed kernel return as a Scalar, keeping a nil
// *bignum.Big from becoming a non-nil interface.
func bigResult(v *bignum.Big, err error) (matrix.Scalar, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// native converts a Scalar back to the dispatcher's public scalar forms.
func native(s matrix.Scalar) any {
	if f, ok := s.(matrix.Float); ok {
		return float64(f)
	}
	return s
}

// rejectComplex fails fast on complex operands.
func rejectComplex(v any) error {
	switch v.(type) {
	case complex64, complex128:
		return fmt.Errorf("%T: use a complex-aware root function: %w", v, ErrUnsupportedType)
	}
	return nil
}
