// SPDX-License-Identifier: MIT

// Package gonumconv copies matrices between matrix.Dense and gonum's mat
// package, so results of this kernel can be fed to gonum routines and the
// other way round. Both directions copy; no storage is shared.
package gonumconv

import (
	"fmt"

	"github.com/katalvlaran/matkernel/matrix"
	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense.
// Errors: matrix.ErrIncorrectMatrix when m is not well-formed.
func ToGonum(m *matrix.Dense) (*mat.Dense, error) {
	if err := matrix.ValidateCorrect(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}

	rows, cols := m.Shape()
	data := make([]float64, 0, rows*cols)
	for _, row := range m.RawRows() {
		data = append(data, row...)
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromGonum copies any mat.Matrix into a new *matrix.Dense.
// Errors: matrix.ErrIncorrectMatrix for nil or empty input.
func FromGonum(src mat.Matrix) (*matrix.Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: nil source: %w", matrix.ErrIncorrectMatrix)
	}
	if d, ok := src.(*mat.Dense); ok && (d == nil || d.IsEmpty()) {
		return nil, fmt.Errorf("FromGonum: nil or empty source: %w", matrix.ErrIncorrectMatrix)
	}

	rows, cols := src.Dims()
	dst, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Indices come from Dims, Set cannot fail here.
			_ = dst.Set(i, j, src.At(i, j))
		}
	}

	return dst, nil
}
