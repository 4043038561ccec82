// SPDX-License-Identifier: MIT
package matrix_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/matkernel/matrix"
	"github.com/stretchr/testify/require"
)

// TestCofactors_OneByOne pins the [[1]] convention: it is not det(A).
func TestCofactors_OneByOne(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{7, 0, -3.5} {
		got, err := matrix.Cofactors(MustDenseFrom(t, [][]float64{{v}}))
		require.NoError(t, err)
		RequireMatrix(t, [][]float64{{1}}, got)
	}
}

func TestCofactors_Known(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in, want [][]float64
	}{
		{"2x2", [][]float64{{1, 2}, {3, 4}}, [][]float64{{4, -3}, {-2, 1}}},
		{
			"3x3",
			[][]float64{{1, 2, 3}, {0, 4, 2}, {5, 2, 1}},
			[][]float64{{0, 10, -20}, {4, -14, 8}, {-8, -2, 4}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := MustDenseFrom(t, tc.in)
			got, err := matrix.Cofactors(a)
			require.NoError(t, err)
			RequireMatrix(t, tc.want, got)
			RequireMatrix(t, tc.in, a)
		})
	}
}

// TestCofactors_WorkersMatchSequential: the pool changes scheduling only.
func TestCofactors_WorkersMatchSequential(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 6; n++ {
		a := RandomDense(t, n, n, int64(40+n))
		ref, err := matrix.Cofactors(a)
		require.NoError(t, err)

		for _, w := range []int{2, 3, 8, 64} {
			t.Run(fmt.Sprintf("n=%d/workers=%d", n, w), func(t *testing.T) {
				got, err := matrix.Cofactors(a, matrix.WithWorkers(w))
				require.NoError(t, err)
				require.Equal(t, ref.RawRows(), got.RawRows())
			})
		}
	}
}

func TestCofactors_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Cofactors(nil)
	require.ErrorIs(t, err, matrix.ErrIncorrectMatrix)
	_, err = matrix.Cofactors(MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Cofactors(MustDense(t, 3, 2), matrix.WithWorkers(4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCofactorsContext_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := RandomDense(t, 4, 4, 5)
	for _, w := range []int{1, 4} {
		got, err := matrix.CofactorsContext(ctx, a, matrix.WithWorkers(w))
		require.ErrorIs(t, err, context.Canceled, "workers=%d", w)
		require.Nil(t, got)
	}
}
