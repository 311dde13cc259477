package nthroot_test

import (
	"testing"

	"github.com/katalvlaran/rootwise/bignum"
	"github.com/katalvlaran/rootwise/matrix"
	"github.com/katalvlaran/rootwise/nthroot"
)

func benchDense(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	d, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := d.Set(matrix.Float(i*n+j+1), i, j); err != nil {
				b.Fatal(err)
			}
		}
	}
	return d
}

// benchSparse keeps one stored cell per row, so density is 1/n.
func benchSparse(b *testing.B, n int) *matrix.Sparse {
	b.Helper()
	entries := make([]matrix.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, matrix.Entry{Row: i, Col: i, Val: matrix.Float(i + 2)})
	}
	s, err := matrix.SparseFromTriplets(n, n, entries)
	if err != nil {
		b.Fatal(err)
	}
	return s
}

func BenchmarkScalar(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := nthroot.Scalar(123.456, 3); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBigScalar(b *testing.B) {
	base, err := bignum.Parse("123.456", 50)
	if err != nil {
		b.Fatal(err)
	}
	root := bignum.FromInt64(3, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nthroot.BigScalar(base, root); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNthRoot_DenseScalar(b *testing.B) {
	m := benchDense(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nthroot.NthRoot(m, 2.0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNthRoot_SparseScalar(b *testing.B) {
	m := benchSparse(b, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nthroot.NthRoot(m, 2.0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNthRoot_SparseSparse(b *testing.B) {
	base := benchSparse(b, 64)
	// The root side must be dense-full: implicit zeros there would mean
	// a zero root.
	roots, err := matrix.SparseFromDense(benchDense(b, 64))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nthroot.NthRoot(base, roots); err != nil {
			b.Fatal(err)
		}
	}
}
