// SPDX-License-Identifier: MIT

package matrix

import (
	"context"
	"fmt"
	"math"
)

// Inverse returns A⁻¹ = adj(A) / det(A) (adjugate method).
// Implementation:
//   - Stage 1: ValidateCorrect(a) → ErrIncorrectMatrix.
//   - Stage 2: det = Determinant(a); non-square → ErrDimensionMismatch.
//   - Stage 3: |det| ≤ SingularTolerance → ErrSingular; nothing else is computed.
//   - Stage 4: C = Cofactors(a); T = Transpose(C) (the adjugate).
//   - Stage 5: result = Scale(T, 1/det).
//
// Behavior highlights:
//   - C and T are transient and released on every exit path.
//   - Terminal states are final: a singular or malformed input never succeeds on retry.
//
// Errors:
//   - ErrIncorrectMatrix, ErrDimensionMismatch, ErrSingular, ErrCalculation (nested).
//
// Complexity:
//   - Dominated by the cofactor engine: O(N² · (N-1)!).
//
// Notes:
//   - For a 1×1 input [[x]] the cofactor convention gives [[1/x]].
func Inverse(a *Dense, opts ...Option) (*Dense, error) {
	return InverseContext(context.Background(), a, opts...)
}

// InverseContext is Inverse with cancellation forwarded to the cofactor engine.
func InverseContext(ctx context.Context, a *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateCorrect(a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det, err := Determinant(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if math.Abs(det) <= SingularTolerance {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%g: %w", det, ErrSingular))
	}

	adj, err := adjugate(ctx, a, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	defer adj.Release()

	res, err := Scale(adj, 1/det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}

// Adjugate returns adj(A) = Cᵀ, the transposed cofactor matrix.
// Errors: ErrIncorrectMatrix, ErrDimensionMismatch, ErrCalculation (nested).
func Adjugate(a *Dense, opts ...Option) (*Dense, error) {
	res, err := adjugate(context.Background(), a, opts...)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return res, nil
}

// adjugate runs Cofactors then Transpose; the cofactor matrix is released
// before returning on both paths.
func adjugate(ctx context.Context, a *Dense, opts ...Option) (*Dense, error) {
	cof, err := CofactorsContext(ctx, a, opts...)
	if err != nil {
		return nil, err
	}
	defer cof.Release()

	return Transpose(cof)
}
