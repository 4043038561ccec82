// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for well-formedness and
//     compatibility checks.
//   - Keep kernels minimal by delegating correctness/shape/square checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Composite validators follow a fixed sequence: Correct → Shape.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsCorrect reports whether m is well-formed: non-nil, rows>=1, cols>=1 and a
// fully allocated buffer of rows*cols values.
// Complexity: O(1).
func IsCorrect(m *Dense) bool {
	return m != nil && m.r >= 1 && m.c >= 1 && m.data != nil && len(m.data) == m.r*m.c
}

// IsEqualShape reports whether a and b have the same rows and columns.
// Values are not compared. Nil operands have no shape and never match.
func IsEqualShape(a, b *Dense) bool {
	if a == nil || b == nil {
		return false
	}

	return a.r == b.r && a.c == b.c
}

// ValidateCorrect – Ensures m satisfies the well-formedness invariant.
//
// Returns ErrIncorrectMatrix otherwise.
// Complexity: O(1).
// Use as the first step in every kernel, before any allocation.
func ValidateCorrect(m *Dense) error {
	if !IsCorrect(m) {
		return validatorErrorf("ValidateCorrect", ErrIncorrectMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures both operands are correct and share a shape.
//
// Returns ErrIncorrectMatrix if either is malformed (checked first),
// ErrDimensionMismatch if shapes differ.
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateCorrect(a); err != nil {
		return err
	}
	if err := ValidateCorrect(b); err != nil {
		return err
	}
	if !IsEqualShape(a, b) {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare – Ensures m is correct and rows == cols.
func ValidateSquare(m *Dense) error {
	if err := ValidateCorrect(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible – Ensures both operands are correct and a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateCorrect(a); err != nil {
		return err
	}
	if err := ValidateCorrect(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}
