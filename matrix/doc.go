// Package matrix is a dense real-valued matrix kernel.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with explicit construction (NewDense) and
//     release (Release).
//   - Validators (IsCorrect, IsEqualShape, Validate*) used as the first step
//     of every operation.
//   - Elementwise and product kernels: Sum, Sub, Scale, Mul, Transpose and the
//     tolerance comparison Equal.
//   - Minor extraction, determinant by Laplace expansion, the cofactor
//     (complement) matrix, the adjugate and the adjugate-based Inverse.
//
// Every operation validates its inputs before allocating and returns a fresh
// Dense; inputs are never mutated. Failures are sentinel errors
// (ErrIncorrectMatrix, ErrDimensionMismatch, ErrSingular, ErrCalculation,
// ErrOutOfRange) that callers match with errors.Is or classify with KindOf.
//
// Laplace expansion costs O(N!). The kernel reproduces that reference
// behavior and is meant for small matrices.
package matrix
