// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the closed error-kind enumeration.
// All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// with matrixErrorf(opTag, err) at the nearest detection site; callers still
// match with errors.Is or classify with KindOf.
//
// ERROR PRIORITY (enforced in tests):
// incorrect matrix -> dimension mismatch -> index range -> singular.

var (
	// ErrIncorrectMatrix is returned when a matrix fails the well-formedness
	// invariant (nil, released, non-positive dimension, short storage) or a
	// construction is requested with non-positive dimensions.
	ErrIncorrectMatrix = errors.New("matrix: incorrect matrix")

	// ErrDimensionMismatch indicates operands that are individually correct but
	// incompatible: unequal shapes for elementwise ops, a.Cols != b.Rows for Mul,
	// non-square input for Determinant/Cofactors/Inverse.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by Inverse when |det| <= SingularTolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrCalculation marks a failure inside a nested computation of the
	// cofactor engine. It is always joined with the underlying cause.
	ErrCalculation = errors.New("matrix: calculation error")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and Minor return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// ErrShapeMismatch names the same condition as ErrDimensionMismatch for
// elementwise operations. errors.Is(err, ErrShapeMismatch) matches both.
var ErrShapeMismatch = ErrDimensionMismatch

// Kind classifies an error returned by this package.
type Kind uint8

const (
	KindNone              Kind = iota // nil error
	KindIncorrectMatrix               // ErrIncorrectMatrix
	KindDimensionMismatch             // ErrDimensionMismatch
	KindSingular                      // ErrSingular
	KindCalculation                   // ErrCalculation without a more specific cause
	KindOutOfRange                    // ErrOutOfRange
	KindUnknown                       // not produced by this package
)

var kindNames = [...]string{
	KindNone:              "none",
	KindIncorrectMatrix:   "incorrect matrix",
	KindDimensionMismatch: "dimension mismatch",
	KindSingular:          "singular",
	KindCalculation:       "calculation error",
	KindOutOfRange:        "out of range",
	KindUnknown:           "unknown",
}

// String returns a short human-readable kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return kindNames[KindUnknown]
}

// Legacy integer result codes: 0 ok, 1 incorrect matrix, 2 calculation error.
const (
	CodeOK               = 0
	CodeIncorrectMatrix  = 1
	CodeCalculationError = 2
)

// Code maps a Kind onto the legacy integer result codes. Every failure that
// is not an incorrect matrix collapses into CodeCalculationError.
func (k Kind) Code() int {
	switch k {
	case KindNone:
		return CodeOK
	case KindIncorrectMatrix:
		return CodeIncorrectMatrix
	default:
		return CodeCalculationError
	}
}

// KindOf classifies err. The most specific cause wins: an ErrCalculation that
// wraps ErrSingular is reported as KindSingular.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrIncorrectMatrix):
		return KindIncorrectMatrix
	case errors.Is(err, ErrDimensionMismatch):
		return KindDimensionMismatch
	case errors.Is(err, ErrSingular):
		return KindSingular
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, ErrCalculation):
		return KindCalculation
	default:
		return KindUnknown
	}
}
