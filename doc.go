// Package rootwise is an in-memory, sparse-aware elementwise nth-root
// engine: apply a scalar binary operation across every combination of
// scalar, dense-matrix and sparse-matrix operands without materializing
// dense results when sparsity can be exploited.
//
// 🚀 What is rootwise?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Scalar kernels: real nth roots in float64 and arbitrary precision
//		• Dense matrices: n-dimensional, shape-vector addressed, immutable ops
//		• Sparse matrices: compressed-sparse-column with implicit-zero semantics
//		• Traversal strategies: dense×dense, dense×sparse, sparse×sparse, broadcasts
//		• A type-pair dispatcher: one stable entry point, NthRoot, for all shapes
//
// ✨ Why choose rootwise?
//
//   - Explicit error taxonomy – every domain violation is a sentinel, matched
//     with errors.Is, never a bare string
//   - Non-destructive – inputs are never mutated; every operation allocates a
//     fresh result, so concurrent callers sharing inputs are race-free
//   - Pure Go – no cgo, no hidden deps
//   - Precision under your control – arbitrary-precision values carry their
//     own significant-digit budget; no global precision register
//
// Under the hood, everything is organized under three subpackages:
//
//	bignum/  - arbitrary-precision decimal scalar over math/big.Float
//	matrix/  - Scalar domain, Dense and Sparse storage, traversal kernels
//	nthroot/ - scalar root kernels + the type-pair dispatcher (NthRoot)
//
// Quick taste:
//
//	res, err := nthroot.NthRoot([]any{[]any{9.0, 64.0}}, 2.0)
//	// res is the nested sequence [[3 8]]
//
//	go get github.com/katalvlaran/rootwise
package rootwise
