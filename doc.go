// Package matkernel is a small dense-matrix algebra kernel over float64.
//
// It brings together:
//   - Construction, release and safe element access of row-major matrices
//   - Elementwise arithmetic, scalar scaling, products and transposition
//   - Determinants by recursive Laplace expansion
//   - Cofactor (complement) matrices, optionally on a bounded worker pool
//   - Inversion by the adjugate method with singularity detection
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/           — Dense type, validators, kernels and error kinds
//	matrix/gonumconv/ — copy adapters to and from gonum.org/v1/gonum/mat
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{2, 0}, {0, 2}})
//	inv, err := matrix.Inverse(a) // [[0.5, 0], [0, 0.5]]
//
//	go get github.com/katalvlaran/matkernel
package matkernel
