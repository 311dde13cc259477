package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootwise/matrix"
)

func TestNewDense_ShapeValidation(t *testing.T) {
	t.Parallel()

	for _, shape := range [][]int{{}, {0}, {2, 0}, {-1, 3}} {
		_, err := matrix.NewDense(shape...)
		if !errors.Is(err, matrix.ErrInvalidDimensions) {
			t.Fatalf("shape %v: want ErrInvalidDimensions, got %v", shape, err)
		}
	}

	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, d.Shape())
	require.Equal(t, 6, d.Size())
	require.Equal(t, 2, d.Rank())
	require.Equal(t, 2, d.Rows())
	require.Equal(t, 3, d.Cols())
}

func TestDense_ZeroInitialized(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := d.At(i, j)
			require.NoError(t, err)
			require.True(t, v.IsZero())
		}
	}
}

func TestDense_AtSet_Bounds(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, d.Set(matrix.Float(7), 1, 2))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, matrix.Float(7), v)

	for _, idx := range [][]int{{2, 0}, {0, 3}, {-1, 0}, {0}, {0, 0, 0}} {
		if _, err := d.At(idx...); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("At%v: want ErrOutOfRange, got %v", idx, err)
		}
		if err := d.Set(matrix.Float(1), idx...); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("Set%v: want ErrOutOfRange, got %v", idx, err)
		}
	}

	if err := d.Set(nil, 0, 0); !errors.Is(err, matrix.ErrBadCell) {
		t.Fatalf("Set(nil): want ErrBadCell, got %v", err)
	}
}

func TestDense_NDimensional(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 24, d.Size())
	require.Equal(t, 3, d.Rank())
	require.Equal(t, 0, d.Cols()) // Cols is a rank-2 notion

	require.NoError(t, d.Set(matrix.Float(5), 1, 2, 3))
	v, err := d.At(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, matrix.Float(5), v)
}

func TestDense_Clone_Independent(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Set(matrix.Float(1), 0, 0))

	c := d.Clone()
	require.NoError(t, c.Set(matrix.Float(9), 0, 0))

	v, err := d.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, matrix.Float(1), v, "clone write leaked into original")
}

func TestDense_String_Rank2(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.NoError(t, d.Set(matrix.Float(1.5), 0, 0))
	require.Equal(t, "[1.5, 0]\n", d.String())
}
