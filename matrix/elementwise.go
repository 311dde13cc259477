// Package matrix: the elementwise traversal kernels.
//
// Purpose:
//   - Apply a caller-supplied binary Op across every pair of matrix (or
//     matrix + scalar) operands, one kernel per storage combination, so
//     higher layers never duplicate tight traversal loops.
//   - Keep all loops deterministic: dense kernels run flat 0..n-1, sparse
//     kernels walk columns left to right and stored rows top to bottom.
//
// Design:
//   - Kernels are policy-free. Whether an operation tolerates implicit
//     zeros on one side (and what to do when it does not) is decided by
//     the caller before the kernel runs; see the nthroot dispatcher.
//   - The result's storage kind is dense if either input is dense, sparse
//     only when every matrix operand is sparse. A compression format is
//     never allowed to silently swallow a potentially dense result.
//   - Every kernel allocates a fresh output; inputs are read-only.
//     SparseScalar clones the input structure, then rewrites values.

package matrix

// DenseDense applies op coordinate-by-coordinate over two identically
// shaped Dense operands and returns a Dense of the same shape.
// Time: O(size). Space: O(size).
func DenseDense(a, b *Dense, op Op) (*Dense, error) {
	if err := ValidateDensePair(a, b); err != nil {
		return nil, matrixErrorf("DenseDense", err)
	}
	out, err := NewDense(a.shape...)
	if err != nil {
		return nil, matrixErrorf("DenseDense", err)
	}
	// Flat pass: both operands share the same row-major layout.
	for i := range a.data {
		v, err := op(a.data[i], b.data[i])
		if err != nil {
			return nil, matrixErrorf("DenseDense", err)
		}
		out.data[i] = v
	}
	return out, nil
}

// DenseSparse applies op(a[i,j], b[i,j]) over a rank-2 Dense and a Sparse
// of the same shape, substituting Float(0) at b's implicit coordinates,
// and returns a Dense. Time: O(rows·cols).
func DenseSparse(a *Dense, b *Sparse, op Op) (*Dense, error) {
	if err := ValidateDenseSparsePair(a, b); err != nil {
		return nil, matrixErrorf("DenseSparse", err)
	}
	r, c := b.rows, b.cols
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("DenseSparse", err)
	}
	// Column-by-column walk of b's storage; the cursor k tracks the next
	// stored row inside column j.
	for j := 0; j < c; j++ {
		k, end := b.colPtr[j], b.colPtr[j+1]
		for i := 0; i < r; i++ {
			y := Zero()
			if k < end && b.rowIdx[k] == i {
				y = b.values[k]
				k++
			}
			v, err := op(a.data[i*c+j], y)
			if err != nil {
				return nil, matrixErrorf("DenseSparse", err)
			}
			out.data[i*c+j] = v
		}
	}
	return out, nil
}

// SparseDense applies op(a[i,j], b[i,j]) over a Sparse and a rank-2 Dense
// of the same shape, substituting Float(0) at a's implicit coordinates,
// and returns a Dense. Time: O(rows·cols).
func SparseDense(a *Sparse, b *Dense, op Op) (*Dense, error) {
	if err := ValidateDenseSparsePair(b, a); err != nil {
		return nil, matrixErrorf("SparseDense", err)
	}
	r, c := a.rows, a.cols
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("SparseDense", err)
	}
	for j := 0; j < c; j++ {
		k, end := a.colPtr[j], a.colPtr[j+1]
		for i := 0; i < r; i++ {
			x := Zero()
			if k < end && a.rowIdx[k] == i {
				x = a.values[k]
				k++
			}
			v, err := op(x, b.data[i*c+j])
			if err != nil {
				return nil, matrixErrorf("SparseDense", err)
			}
			out.data[i*c+j] = v
		}
	}
	return out, nil
}

// SparseSparse co-iterates the stored row sets of two same-shaped Sparse
// operands per column, applies op over the union of touched coordinates
// (the missing side contributes Float(0)), and returns a Sparse. Results
// equal to zero stay implicit, so the output never stores a zero the
// operation produced. Time: O(nnz(a) + nnz(b)).
func SparseSparse(a, b *Sparse, op Op) (*Sparse, error) {
	if err := ValidateSparsePair(a, b); err != nil {
		return nil, matrixErrorf("SparseSparse", err)
	}
	out, err := NewSparse(a.rows, a.cols)
	if err != nil {
		return nil, matrixErrorf("SparseSparse", err)
	}
	for j := 0; j < a.cols; j++ {
		ka, ea := a.colPtr[j], a.colPtr[j+1]
		kb, eb := b.colPtr[j], b.colPtr[j+1]
		// Merge the two strictly increasing row lists of column j.
		for ka < ea || kb < eb {
			var i int
			x, y := Zero(), Zero()
			switch {
			case kb >= eb || (ka < ea && a.rowIdx[ka] < b.rowIdx[kb]):
				i, x = a.rowIdx[ka], a.values[ka]
				ka++
			case ka >= ea || b.rowIdx[kb] < a.rowIdx[ka]:
				i, y = b.rowIdx[kb], b.values[kb]
				kb++
			default: // stored on both sides
				i, x, y = a.rowIdx[ka], a.values[ka], b.values[kb]
				ka++
				kb++
			}
			v, err := op(x, y)
			if err != nil {
				return nil, matrixErrorf("SparseSparse", err)
			}
			if v.IsZero() {
				continue // implicit zero stays implicit
			}
			out.values = append(out.values, v)
			out.rowIdx = append(out.rowIdx, i)
		}
		out.colPtr[j+1] = len(out.values)
	}
	return out, nil
}

// DenseScalar broadcasts op between every cell of m and the scalar s,
// returning a Dense of the same shape. scalarRight selects the argument
// order: op(cell, s) when true, op(s, cell) when false; the order
// matters for non-commutative operations. Time: O(size).
func DenseScalar(m *Dense, s Scalar, op Op, scalarRight bool) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf("DenseScalar", ErrNilMatrix)
	}
	if s == nil {
		return nil, matrixErrorf("DenseScalar", ErrBadCell)
	}
	out, err := NewDense(m.shape...)
	if err != nil {
		return nil, matrixErrorf("DenseScalar", err)
	}
	for i, x := range m.data {
		var (
			v   Scalar
			err error
		)
		if scalarRight {
			v, err = op(x, s)
		} else {
			v, err = op(s, x)
		}
		if err != nil {
			return nil, matrixErrorf("DenseScalar", err)
		}
		out.data[i] = v
	}
	return out, nil
}

// SparseScalar broadcasts op between the stored coordinates of m and the
// scalar s, returning a Sparse with the same stored structure. Implicit
// zeros are skipped by construction, so callers must ensure beforehand that
// the operation maps implicit zeros to zero (or reject the combination).
// Stored results are kept even when the operation yields zero, preserving
// the input structure. Time: O(nnz).
func SparseScalar(m *Sparse, s Scalar, op Op, scalarRight bool) (*Sparse, error) {
	if m == nil {
		return nil, matrixErrorf("SparseScalar", ErrNilMatrix)
	}
	if s == nil {
		return nil, matrixErrorf("SparseScalar", ErrBadCell)
	}
	out := m.Clone()
	for k, x := range m.values {
		var (
			v   Scalar
			err error
		)
		if scalarRight {
			v, err = op(x, s)
		} else {
			v, err = op(s, x)
		}
		if err != nil {
			return nil, matrixErrorf("SparseScalar", err)
		}
		out.values[k] = v
	}
	return out, nil
}
