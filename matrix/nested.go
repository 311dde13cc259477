// Package matrix: nested-sequence conversion.
//
// FromNested and the Nested methods bridge plain Go slices and the matrix
// types so callers can hand in `[]any{[]any{1.0, 2.0}, ...}` (or the
// common typed forms) and get the same structure back after an operation.
// The round-trip matrix(FromNested(x)).Nested() preserves shape and
// values exactly.

package matrix

import "github.com/katalvlaran/rootwise/bignum"

// ScalarOf normalizes a supported native value into a Scalar.
// Supported kinds: Float, *bignum.Big, float64, float32 and the signed
// and unsigned integer sizes. Anything else reports false.
func ScalarOf(v any) (Scalar, bool) {
	switch x := v.(type) {
	case Float:
		return x, true
	case *bignum.Big:
		if x == nil {
			return nil, false
		}
		return x, true
	case float64:
		return Float(x), true
	case float32:
		return Float(x), true
	case int:
		return Float(x), true
	case int8:
		return Float(x), true
	case int16:
		return Float(x), true
	case int32:
		return Float(x), true
	case int64:
		return Float(x), true
	case uint:
		return Float(x), true
	case uint8:
		return Float(x), true
	case uint16:
		return Float(x), true
	case uint32:
		return Float(x), true
	case uint64:
		return Float(x), true
	default:
		return nil, false
	}
}

// asSeq normalizes the supported sequence kinds into []any.
func asSeq(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []float64:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case [][]float64:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	case []int:
		out := make([]any, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}

// IsNested reports whether v is a supported nested-sequence kind.
func IsNested(v any) bool {
	_, ok := asSeq(v)
	return ok
}

// FromNested builds a Dense from a nested sequence. The shape is inferred
// from the first element at every depth; siblings of different lengths
// yield ErrRaggedNested, unsupported leaves ErrBadCell, and empty
// sequences ErrInvalidDimensions.
func FromNested(v any) (*Dense, error) {
	if _, ok := asSeq(v); !ok {
		return nil, matrixErrorf("FromNested", ErrBadCell)
	}
	// Infer the shape by walking the first-element spine.
	var shape []int
	for cur := v; ; {
		s, ok := asSeq(cur)
		if !ok {
			break
		}
		if len(s) == 0 {
			return nil, matrixErrorf("FromNested", ErrInvalidDimensions)
		}
		shape = append(shape, len(s))
		cur = s[0]
	}
	d, err := NewDense(shape...)
	if err != nil {
		return nil, err
	}
	pos := 0
	var fill func(v any, depth int) error
	fill = func(v any, depth int) error {
		if depth == len(shape) {
			sc, ok := ScalarOf(v)
			if !ok {
				// A deeper sequence here means ragged nesting; anything
				// else is an unsupported leaf.
				if IsNested(v) {
					return matrixErrorf("FromNested", ErrRaggedNested)
				}
				return matrixErrorf("FromNested", ErrBadCell)
			}
			d.data[pos] = sc
			pos++
			return nil
		}
		s, ok := asSeq(v)
		if !ok || len(s) != shape[depth] {
			return matrixErrorf("FromNested", ErrRaggedNested)
		}
		for _, e := range s {
			if err := fill(e, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := fill(v, 0); err != nil {
		return nil, err
	}
	return d, nil
}

// nativeOf converts a Scalar back to its plain Go form: Float to float64,
// arbitrary-precision values as themselves.
func nativeOf(s Scalar) any {
	if f, ok := s.(Float); ok {
		return float64(f)
	}
	return s
}

// Nested converts the Dense back into a nested []any sequence with
// float64 and *bignum.Big leaves.
func (m *Dense) Nested() any {
	pos := 0
	var build func(depth int) any
	build = func(depth int) any {
		if depth == len(m.shape) {
			v := nativeOf(m.data[pos])
			pos++
			return v
		}
		out := make([]any, m.shape[depth])
		for i := range out {
			out[i] = build(depth + 1)
		}
		return out
	}
	return build(0)
}

// Nested materializes the Sparse (implicit zeros included) as a nested
// []any sequence.
func (s *Sparse) Nested() any {
	return s.ToDense().Nested()
}
