// Package matrix provides the storage layer and elementwise traversal
// kernels for sparse-aware scalar operations.
//
// The matrix package provides:
//
//   - Scalar, the closed element domain: native Float values or
//     arbitrary-precision *bignum.Big values.
//   - Dense, an n-dimensional array with an explicit shape vector and flat
//     row-major storage; every logical coordinate holds a value.
//   - Sparse, a 2-dimensional compressed-sparse-column structure that
//     stores only non-zero values; unlisted coordinates are implicit zero.
//   - Nested-sequence converters (FromNested / Nested) for round-tripping
//     with plain Go slices.
//   - A family of traversal kernels (DenseDense, DenseSparse, SparseDense,
//     SparseSparse, DenseScalar, SparseScalar) that apply a caller-supplied
//     binary operation elementwise while respecting each representation's
//     storage layout.
//
// Inputs are never mutated: every kernel allocates and returns a fresh
// matrix, so concurrent callers sharing input matrices are race-free.
// Kernels are policy-free: preconditions tied to a particular operation
// (for example density requirements of root extraction) belong to the
// caller; see the nthroot package.
package matrix
