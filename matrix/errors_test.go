// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/matkernel/matrix"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want matrix.Kind
		code int
	}{
		{nil, matrix.KindNone, matrix.CodeOK},
		{matrix.ErrIncorrectMatrix, matrix.KindIncorrectMatrix, matrix.CodeIncorrectMatrix},
		{fmt.Errorf("Sum: %w", matrix.ErrShapeMismatch), matrix.KindDimensionMismatch, matrix.CodeCalculationError},
		{fmt.Errorf("Inverse: %w", matrix.ErrSingular), matrix.KindSingular, matrix.CodeCalculationError},
		{matrix.ErrOutOfRange, matrix.KindOutOfRange, matrix.CodeCalculationError},
		{matrix.ErrCalculation, matrix.KindCalculation, matrix.CodeCalculationError},
		{fmt.Errorf("%w: %w", matrix.ErrCalculation, matrix.ErrSingular), matrix.KindSingular, matrix.CodeCalculationError},
		{errors.New("other"), matrix.KindUnknown, matrix.CodeCalculationError},
	}

	for _, tc := range tests {
		got := matrix.KindOf(tc.err)
		require.Equal(t, tc.want, got, "%v", tc.err)
		require.Equal(t, tc.code, got.Code(), "%v", tc.err)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "none", matrix.KindNone.String())
	require.Equal(t, "singular", matrix.KindSingular.String())
	require.Equal(t, "unknown", matrix.Kind(200).String())
}

// TestErrorPriority: malformed input is reported before any shape problem.
func TestErrorPriority(t *testing.T) {
	t.Parallel()

	_, err := matrix.Mul(released(t), MustDense(t, 5, 5))
	require.Equal(t, matrix.KindIncorrectMatrix, matrix.KindOf(err))

	_, err = matrix.Inverse(&matrix.Dense{})
	require.Equal(t, matrix.KindIncorrectMatrix, matrix.KindOf(err))
	require.Equal(t, matrix.CodeIncorrectMatrix, matrix.KindOf(err).Code())
}
