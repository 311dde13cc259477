// Dense is a concrete n-dimensional implementation backed by a flat
// row-major slice for performance and cache friendliness. The shape
// vector is explicit; every logical coordinate holds a value (no implicit
// zeros). Operations never mutate a Dense in place; new instances are
// constructed instead.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rootwise/bignum"
)

// Dense is an n-dimensional matrix of Scalar values in row-major order.
type Dense struct {
	shape []int    // explicit size vector, every entry > 0
	data  []Scalar // flat backing storage, length == product(shape)
}

// NewDense creates a Dense of the given shape initialized to Float(0).
// Complexity: O(size) time and memory.
func NewDense(shape ...int) (*Dense, error) {
	if len(shape) == 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}
	size := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
		}
		size *= d
	}
	data := make([]Scalar, size)
	for i := range data {
		data[i] = Float(0)
	}
	return &Dense{shape: append([]int(nil), shape...), data: data}, nil
}

// Rank returns the number of dimensions.
func (m *Dense) Rank() int { return len(m.shape) }

// Shape returns a copy of the size vector.
func (m *Dense) Shape() []int { return append([]int(nil), m.shape...) }

// Size returns the total number of logical coordinates.
func (m *Dense) Size() int { return len(m.data) }

// Rows returns the first dimension. Meaningful for rank-2 matrices;
// callers pairing a Dense with a Sparse must validate rank first.
func (m *Dense) Rows() int { return m.shape[0] }

// Cols returns the second dimension of a rank-2 matrix, 0 otherwise.
func (m *Dense) Cols() int {
	if len(m.shape) != 2 {
		return 0
	}
	return m.shape[1]
}

// offset computes the flat index for idx or returns ErrOutOfRange.
// The index arity must equal the rank.
func (m *Dense) offset(idx []int) (int, error) {
	if len(idx) != len(m.shape) {
		return 0, matrixErrorf(fmt.Sprintf("index arity %d for rank %d", len(idx), len(m.shape)), ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= m.shape[k] {
			return 0, matrixErrorf(fmt.Sprintf("index %v in shape %v", idx, m.shape), ErrOutOfRange)
		}
		off = off*m.shape[k] + i
	}
	return off, nil
}

// At retrieves the element at the given coordinate.
func (m *Dense) At(idx ...int) (Scalar, error) {
	off, err := m.offset(idx)
	if err != nil {
		return nil, err
	}
	return m.data[off], nil
}

// Set assigns v at the given coordinate. It exists for construction;
// kernels never call it on their inputs.
func (m *Dense) Set(v Scalar, idx ...int) error {
	if v == nil {
		return matrixErrorf("Set", ErrBadCell)
	}
	off, err := m.offset(idx)
	if err != nil {
		return err
	}
	m.data[off] = v
	return nil
}

// Clone returns a deep structural copy. Scalar values are immutable, so
// sharing them between copies is safe.
func (m *Dense) Clone() *Dense {
	data := make([]Scalar, len(m.data))
	copy(data, m.data)
	return &Dense{shape: append([]int(nil), m.shape...), data: data}
}

// sameShape reports whether the two shape vectors are identical.
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// scalarString renders a cell for display.
func scalarString(s Scalar) string {
	switch v := s.(type) {
	case Float:
		return fmt.Sprintf("%g", float64(v))
	case *bignum.Big:
		return v.String()
	default:
		return fmt.Sprintf("%v", s)
	}
}

// String implements fmt.Stringer for easy debugging. Rank-2 matrices
// print row by row; higher ranks print the shape and the flat contents.
func (m *Dense) String() string {
	var sb strings.Builder
	if len(m.shape) == 2 {
		r, c := m.shape[0], m.shape[1]
		for i := 0; i < r; i++ {
			sb.WriteString("[")
			for j := 0; j < c; j++ {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(scalarString(m.data[i*c+j]))
			}
			sb.WriteString("]\n")
		}
		return sb.String()
	}
	fmt.Fprintf(&sb, "Dense%v[", m.shape)
	for i, v := range m.data {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(scalarString(v))
	}
	sb.WriteString("]")
	return sb.String()
}
