package nthroot_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootwise/nthroot"
)

func TestScalar_PositiveBases(t *testing.T) {
	t.Parallel()

	cases := []struct {
		a, root, want float64
	}{
		{16, 2, 4},
		{27, 3, 3},
		{32, 5, 2},
		{1, 7, 1},
		{2, 2, math.Sqrt2},
		{64, 6, 2},
		{10, 1, 10},
		// Fractional roots: x^(1/0.5) == x^2.
		{3, 0.5, 9},
	}
	for _, tc := range cases {
		got, err := nthroot.Scalar(tc.a, tc.root)
		require.NoError(t, err, "Scalar(%g, %g)", tc.a, tc.root)
		require.InEpsilon(t, tc.want, got, 1e-14, "Scalar(%g, %g)", tc.a, tc.root)
	}
}

func TestScalar_NegativeBases(t *testing.T) {
	t.Parallel()

	got, err := nthroot.Scalar(-8, 3)
	require.NoError(t, err)
	require.InEpsilon(t, -2.0, got, 1e-14)

	got, err = nthroot.Scalar(-32, 5)
	require.NoError(t, err)
	require.InEpsilon(t, -2.0, got, 1e-14)

	// Odd negative root: compute with |root|, then invert.
	got, err = nthroot.Scalar(-8, -3)
	require.NoError(t, err)
	require.InEpsilon(t, -0.5, got, 1e-14)

	// Even, fractional and infinite roots of a negative base are invalid.
	for _, root := range []float64{2, 4, 2.5, math.Inf(1)} {
		_, err := nthroot.Scalar(-8, root)
		require.ErrorIs(t, err, nthroot.ErrInvalidRootParity, "root %g", root)
	}
}

func TestScalar_NegativeRoots(t *testing.T) {
	t.Parallel()

	// nthRoot(x, -n) == 1 / nthRoot(x, n).
	got, err := nthroot.Scalar(16, -2)
	require.NoError(t, err)
	require.InEpsilon(t, 0.25, got, 1e-14)

	got, err = nthroot.Scalar(64, -3)
	require.NoError(t, err)
	require.InEpsilon(t, 0.25, got, 1e-14)
}

func TestScalar_ZeroRoot(t *testing.T) {
	t.Parallel()

	_, err := nthroot.Scalar(4, 0)
	require.ErrorIs(t, err, nthroot.ErrInvalidRoot)
	_, err = nthroot.Scalar(0, 0)
	require.ErrorIs(t, err, nthroot.ErrInvalidRoot)
}

func TestScalar_ZeroBase(t *testing.T) {
	t.Parallel()

	got, err := nthroot.Scalar(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)

	got, err = nthroot.Scalar(0, -3)
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1), "zero base with a negative root inverts to +Inf")
}

func TestScalar_InfiniteBase(t *testing.T) {
	t.Parallel()

	got, err := nthroot.Scalar(math.Inf(1), 3)
	require.NoError(t, err)
	require.True(t, math.IsInf(got, 1))

	got, err = nthroot.Scalar(math.Inf(-1), 3)
	require.NoError(t, err)
	require.True(t, math.IsInf(got, -1))

	got, err = nthroot.Scalar(math.Inf(1), -2)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)

	// -Inf with an even root has no real value.
	_, err = nthroot.Scalar(math.Inf(-1), 2)
	require.ErrorIs(t, err, nthroot.ErrInvalidRootParity)
}

func TestScalarDefault(t *testing.T) {
	t.Parallel()

	got, err := nthroot.ScalarDefault(9)
	require.NoError(t, err)
	require.InEpsilon(t, 3.0, got, 1e-14)
}
