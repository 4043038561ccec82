// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Minor returns the submatrix of a obtained by deleting row `row` and column
// `col`, both 1-based.
// Implementation:
//   - Stage 1: validate a is correct and has at least two rows and two columns.
//   - Stage 2: validate 1 ≤ row ≤ Rows and 1 ≤ col ≤ Cols.
//   - Stage 3: copy every surviving cell; indices past the deleted row/column
//     shift down by one.
//
// Behavior highlights:
//   - a need not be square.
//   - The result is a fresh (r-1)×(c-1) Dense; a is not touched.
//
// Errors:
//   - ErrIncorrectMatrix, ErrDimensionMismatch (fewer than 2 rows or cols),
//     ErrOutOfRange (row/col outside the matrix).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func Minor(a *Dense, row, col int) (*Dense, error) {
	if err := ValidateCorrect(a); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if a.r < 2 || a.c < 2 {
		return nil, matrixErrorf(opMinor,
			fmt.Errorf("%dx%d has no minor: %w", a.r, a.c, ErrDimensionMismatch))
	}
	if row < 1 || row > a.r || col < 1 || col > a.c {
		return nil, matrixErrorf(opMinor,
			fmt.Errorf("(%d,%d) outside %dx%d: %w", row, col, a.r, a.c, ErrOutOfRange))
	}

	return minorOf(a, row-1, col-1), nil
}

// minorOf is the unchecked core of Minor with zero-based skip indices.
// Callers guarantee a is correct, at least 2×2, and skipRow/skipCol are in range.
func minorOf(a *Dense, skipRow, skipCol int) *Dense {
	rows, cols := a.r-1, a.c-1
	res := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}

	var i, j, dst int
	var base int
	for i = 0; i < a.r; i++ {
		if i == skipRow {
			continue
		}
		base = i * a.c
		for j = 0; j < a.c; j++ {
			if j == skipCol {
				continue
			}
			res.data[dst] = a.data[base+j]
			dst++
		}
	}

	return res
}
