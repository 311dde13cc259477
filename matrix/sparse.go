// Sparse is a 2-dimensional compressed-sparse-column matrix: stored
// values and their row indices, grouped per column through a column
// pointer array. Unlisted coordinates are implicit zero.
//
// Invariants (enforced at construction, preserved by every kernel):
//   - row indices are strictly increasing within each column;
//   - no two stored entries share a coordinate;
//   - stored explicit zeros are never cleaned out by these algorithms,
//     they stay wherever a caller intentionally put them.

package matrix

import (
	"fmt"
	"sort"
	"strings"
)

// Sparse is a compressed-sparse-column matrix of Scalar values.
type Sparse struct {
	rows, cols int
	values     []Scalar // stored entries, column by column
	rowIdx     []int    // row index per stored entry, strictly increasing within a column
	colPtr     []int    // length cols+1; column j occupies [colPtr[j], colPtr[j+1])
}

// Entry is one stored coordinate for triplet construction.
type Entry struct {
	Row, Col int
	Val      Scalar
}

// NewSparse creates an empty rows×cols Sparse (all coordinates implicit
// zero). Complexity: O(cols).
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewSparse", ErrInvalidDimensions)
	}
	return &Sparse{rows: rows, cols: cols, colPtr: make([]int, cols+1)}, nil
}

// SparseFromTriplets builds a Sparse from unordered (row, col, value)
// entries. Entries are sorted into column-major order; a repeated
// coordinate yields ErrDuplicateCoordinate, an out-of-bounds coordinate
// ErrOutOfRange, and a nil value ErrBadCell. Explicit zero values are
// kept as stored entries.
// Complexity: O(n log n) for the sort.
func SparseFromTriplets(rows, cols int, entries []Entry) (*Sparse, error) {
	s, err := NewSparse(rows, cols)
	if err != nil {
		return nil, matrixErrorf("SparseFromTriplets", ErrInvalidDimensions)
	}
	es := append([]Entry(nil), entries...)
	for _, e := range es {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, matrixErrorf(fmt.Sprintf("SparseFromTriplets(%d,%d)", e.Row, e.Col), ErrOutOfRange)
		}
		if e.Val == nil {
			return nil, matrixErrorf("SparseFromTriplets", ErrBadCell)
		}
	}
	sort.Slice(es, func(i, j int) bool {
		if es[i].Col != es[j].Col {
			return es[i].Col < es[j].Col
		}
		return es[i].Row < es[j].Row
	})
	for k, e := range es {
		if k > 0 && es[k-1].Col == e.Col && es[k-1].Row == e.Row {
			return nil, matrixErrorf(fmt.Sprintf("SparseFromTriplets(%d,%d)", e.Row, e.Col), ErrDuplicateCoordinate)
		}
		s.values = append(s.values, e.Val)
		s.rowIdx = append(s.rowIdx, e.Row)
		s.colPtr[e.Col+1]++
	}
	// Prefix-sum the per-column counts into column pointers.
	for j := 0; j < cols; j++ {
		s.colPtr[j+1] += s.colPtr[j]
	}
	return s, nil
}

// SparseFromDense converts a rank-2 Dense, dropping zero cells into
// implicit zeros. Complexity: O(rows·cols).
func SparseFromDense(d *Dense) (*Sparse, error) {
	if d == nil {
		return nil, matrixErrorf("SparseFromDense", ErrNilMatrix)
	}
	if d.Rank() != 2 {
		return nil, matrixErrorf("SparseFromDense", ErrNotTwoDimensional)
	}
	r, c := d.Rows(), d.Cols()
	s, err := NewSparse(r, c)
	if err != nil {
		return nil, err
	}
	// Column-major walk keeps row indices strictly increasing per column.
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			v := d.data[i*c+j]
			if !v.IsZero() {
				s.values = append(s.values, v)
				s.rowIdx = append(s.rowIdx, i)
			}
		}
		s.colPtr[j+1] = len(s.values)
	}
	return s, nil
}

// Rows returns the number of rows.
func (s *Sparse) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s *Sparse) Cols() int { return s.cols }

// NNZ returns the number of stored entries.
func (s *Sparse) NNZ() int { return len(s.values) }

// Density reports the fraction of coordinates holding a stored value,
// in [0, 1]. A density of 1 means no implicit zeros exist.
func (s *Sparse) Density() float64 {
	return float64(len(s.values)) / float64(s.rows*s.cols)
}

// At retrieves the element at (row, col); implicit zeros come back as
// Float(0). Complexity: O(log nnz(col)) by binary search.
func (s *Sparse) At(row, col int) (Scalar, error) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return nil, matrixErrorf(fmt.Sprintf("At(%d,%d)", row, col), ErrOutOfRange)
	}
	lo, hi := s.colPtr[col], s.colPtr[col+1]
	k := lo + sort.SearchInts(s.rowIdx[lo:hi], row)
	if k < hi && s.rowIdx[k] == row {
		return s.values[k], nil
	}
	return Float(0), nil
}

// Clone returns a deep structural copy. Scalar values are immutable, so
// sharing them between copies is safe.
func (s *Sparse) Clone() *Sparse {
	return &Sparse{
		rows:   s.rows,
		cols:   s.cols,
		values: append([]Scalar(nil), s.values...),
		rowIdx: append([]int(nil), s.rowIdx...),
		colPtr: append([]int(nil), s.colPtr...),
	}
}

// ToDense materializes every coordinate, implicit zeros included.
// Complexity: O(rows·cols).
func (s *Sparse) ToDense() *Dense {
	d, _ := NewDense(s.rows, s.cols)
	for j := 0; j < s.cols; j++ {
		for k := s.colPtr[j]; k < s.colPtr[j+1]; k++ {
			d.data[s.rowIdx[k]*s.cols+j] = s.values[k]
		}
	}
	return d
}

// String implements fmt.Stringer: shape, fill statistics and the stored
// triplets in column-major order.
func (s *Sparse) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sparse %dx%d nnz=%d density=%.3g\n", s.rows, s.cols, s.NNZ(), s.Density())
	for j := 0; j < s.cols; j++ {
		for k := s.colPtr[j]; k < s.colPtr[j+1]; k++ {
			fmt.Fprintf(&sb, "  (%d, %d) %s\n", s.rowIdx[k], j, scalarString(s.values[k]))
		}
	}
	return sb.String()
}
