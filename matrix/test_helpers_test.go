// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed unless a test is about malformed input.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matkernel/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// MustDense allocates an r×c zero *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustDenseFrom builds a *Dense from a row literal or fails the test.
func MustDenseFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandomDense returns an r×c matrix with values in [-5,5) from a fixed seed.
func RandomDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*10-5))
		}
	}

	return m
}

// RandomInvertible returns a strictly diagonally dominant n×n matrix, which is
// always invertible and comfortably far from the singular threshold.
func RandomInvertible(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += float64(n) + 1
			}
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// RequireMatrix asserts got equals want within matrix.Epsilon.
func RequireMatrix(t *testing.T, want [][]float64, got *matrix.Dense) {
	t.Helper()
	require.NotNil(t, got)
	w := MustDenseFrom(t, want)
	require.Truef(t, matrix.Equal(w, got), "want\n%vgot\n%v", w, got)
}

// RequireDeltaScaled asserts |want-got| <= tol·max(1,|want|).
func RequireDeltaScaled(t *testing.T, want, got, tol float64) {
	t.Helper()
	require.InDelta(t, want, got, tol*math.Max(1, math.Abs(want)))
}

// GonumOf copies m into a gonum matrix for use as an independent oracle.
func GonumOf(m *matrix.Dense) *mat.Dense {
	r, c := m.Shape()
	out := mat.NewDense(r, c, nil)
	for i, row := range m.RawRows() {
		out.SetRow(i, row)
	}

	return out
}
