package nthroot_test

import (
	"fmt"

	"github.com/katalvlaran/rootwise/bignum"
	"github.com/katalvlaran/rootwise/matrix"
	"github.com/katalvlaran/rootwise/nthroot"
)

// The two-argument form takes the base and the root; integers are
// accepted and normalized to float64.
func ExampleNthRoot() {
	v, _ := nthroot.NthRoot(16, 2)
	fmt.Println(v)

	// A negative root inverts the result.
	v, _ = nthroot.NthRoot(16.0, -2.0)
	fmt.Println(v)
	// Output:
	// 4
	// 0.25
}

// The single-argument form defaults the root to 2.
func ExampleNthRoot_defaultRoot() {
	v, _ := nthroot.NthRoot(64.0)
	fmt.Println(v)
	// Output:
	// 8
}

// Matrix operands compute elementwise. A dense base with a scalar root
// broadcasts the root across every cell.
func ExampleNthRoot_dense() {
	m, _ := matrix.FromNested([][]float64{{16, 25}, {36, 49}})
	v, _ := nthroot.NthRoot(m, 2.0)
	fmt.Print(v)
	// Output:
	// [4, 5]
	// [6, 7]
}

// A sparse base with a positive scalar root keeps its implicit zeros:
// nthRoot(0, n) is 0, so only stored cells are visited.
func ExampleNthRoot_sparse() {
	d, _ := matrix.FromNested([][]float64{{16, 0}, {0, 81}})
	s, _ := matrix.SparseFromDense(d)

	v, _ := nthroot.NthRoot(s, 2.0)
	out := v.(*matrix.Sparse)
	fmt.Println("nnz:", out.NNZ())
	fmt.Print(out.ToDense())
	// Output:
	// nnz: 2
	// [4, 0]
	// [0, 9]
}

// Nested sequences round-trip: nested in, nested out.
func ExampleNthRoot_nested() {
	v, _ := nthroot.NthRoot([]float64{16, 81, 256}, 2.0)
	fmt.Println(v)
	// Output:
	// [4 9 16]
}

// Arbitrary-precision operands stay in their own domain and carry the
// base's digit budget through the computation.
func ExampleNthRoot_bignum() {
	a, _ := bignum.Parse("2", 20)
	v, _ := nthroot.NthRoot(a)
	fmt.Println(v)
	// Output:
	// 1.4142135623730950488
}
