// SPDX-License-Identifier: MIT
// Package matrix provides the elementwise and product kernels the
// determinant/cofactor/inverse engines build on: Sum, Sub, Scale, Mul,
// Transpose and tolerance equality. Every kernel validates before allocating
// and returns a freshly allocated Dense; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// Epsilon is the fixed absolute tolerance used by Equal.
const Epsilon = 1e-7

// SingularTolerance is the |det| threshold at or below which Inverse reports ErrSingular.
const SingularTolerance = 1e-6

// zeroSum is the initial value of the Laplace accumulator.
const zeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opSum         = "Sum"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateSameShape(a, b) before any allocation.
//   - Stage 2: single flat loop over the backing slices.
//
// Errors:
//   - ErrIncorrectMatrix, ErrDimensionMismatch wrapped with opTag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Sum computes C = A + B elementwise.
// Errors: ErrIncorrectMatrix, ErrDimensionMismatch.
func Sum(a, b *Dense) (*Dense, error) { return addSub(a, b, +1, opSum) }

// Sub computes C = A - B elementwise.
// Errors: ErrIncorrectMatrix, ErrDimensionMismatch.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale computes B = alpha·A.
// Errors: ErrIncorrectMatrix.
// Complexity: O(r*c).
func Scale(a *Dense, alpha float64) (*Dense, error) {
	if err := ValidateCorrect(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range a.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Mul computes the matrix product C = A·B.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); nothing is allocated on failure.
//   - Stage 2: allocate C (a.Rows × b.Cols) and accumulate in i→k→j order so the
//     innermost loop walks contiguous rows of B and C.
//
// Errors:
//   - ErrIncorrectMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, n, c := a.r, a.c, b.c
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j int
	var aik float64
	var rowA, rowB, rowC int
	for i = 0; i < r; i++ {
		rowA = i * n
		rowC = i * c
		for k = 0; k < n; k++ {
			aik = a.data[rowA+k]
			rowB = k * c
			for j = 0; j < c; j++ {
				res.data[rowC+j] += aik * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns Aᵀ (cols×rows) with res[j][i] = a[i][j].
// Errors: ErrIncorrectMatrix.
func Transpose(a *Dense) (*Dense, error) {
	if err := ValidateCorrect(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	res, err := NewDense(a.c, a.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			res.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and every pair of cells
// differs by less than Epsilon. Incorrect operands never compare equal.
// Intended for verification, not for control flow inside the kernels.
func Equal(a, b *Dense) bool {
	if !IsCorrect(a) || !IsCorrect(b) || !IsEqualShape(a, b) {
		return false
	}
	for idx := range a.data {
		// Negated form so that NaN cells compare unequal.
		if !(math.Abs(a.data[idx]-b.data[idx]) < Epsilon) {
			return false
		}
	}

	return true
}
