// Package nthroot computes real nth roots (the value x solving x**r == a)
// for scalars, dense matrices, sparse matrices and plain nested
// sequences, in double precision or arbitrary precision.
//
// The single stable entry point is NthRoot, taking one or two positional
// arguments (the root defaults to 2). It resolves the runtime type pair
// of its operands, picks the matching traversal strategy from the matrix
// package, and threads the right scalar kernel through it. Sparse
// operands keep their implicit zeros implicit wherever the identity
// root(0, r) == 0 makes that valid; combinations where an implicit zero
// cannot represent the true result are rejected up front with
// ErrNonInvertibleZero instead of silently densifying.
//
// All domain violations are sentinel errors matched via errors.Is; there
// are no partial results: either the full matrix/scalar comes back or an
// error is returned before any output is constructed.
package nthroot
