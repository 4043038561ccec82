// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matkernel/matrix"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions_Documented(t *testing.T) {
	t.Parallel()

	require.Equal(t, matrix.DefaultWorkers, matrix.NewOptions().Workers())
}

func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions(matrix.WithWorkers(8), matrix.WithWorkers(2))
	require.Equal(t, 2, o.Workers())

	o = matrix.NewOptions(nil, matrix.WithWorkers(3))
	require.Equal(t, 3, o.Workers())
}

func TestWithWorkers_PanicsOnInvalid(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "matrix: WithWorkers: n must be >= 1", func() { matrix.WithWorkers(0) })
	require.Panics(t, func() { matrix.WithWorkers(-4) })
}
