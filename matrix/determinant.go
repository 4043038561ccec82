// SPDX-License-Identifier: MIT

package matrix

// Determinant returns det(A) by Laplace expansion along the first row.
// Implementation:
//   - Stage 1: ValidateSquare(a) (ErrIncorrectMatrix first, then ErrDimensionMismatch).
//   - Stage 2: 1×1 → the single cell; 2×2 → closed form a00*a11 - a01*a10.
//   - Stage 3: N≥3 → Σ_i (-1)^i · a[0][i] · det(Minor(a, 1, i+1)), recursing.
//
// Behavior highlights:
//   - Plain recursion, no memoization, no pivoting: cost is O(N!) and the
//     summation order is fixed, so results are reproducible bit for bit.
//   - Every intermediate minor is released as soon as its determinant is known.
//
// Errors:
//   - ErrIncorrectMatrix, ErrDimensionMismatch; nested minor failures propagate.
//
// Complexity:
//   - Time O(N!), recursion depth N-2, Space O(N^2) live per level.
func Determinant(a *Dense) (float64, error) {
	if err := ValidateSquare(a); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if a.r == 1 {
		return a.data[0], nil
	}

	det, err := laplace(a)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// laplace expands a square matrix of order ≥ 2 along its first row.
func laplace(a *Dense) (float64, error) {
	if a.r == 2 {
		return a.data[0]*a.data[3] - a.data[1]*a.data[2], nil
	}

	det := zeroSum
	sign := 1.0
	for i := 0; i < a.c; i++ {
		sub, err := Minor(a, 1, i+1)
		if err != nil {
			return 0, err
		}
		d, err := laplace(sub)
		sub.Release()
		if err != nil {
			return 0, err
		}
		det += sign * a.data[i] * d
		sign = -sign
	}

	return det, nil
}
