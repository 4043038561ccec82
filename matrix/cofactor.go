// SPDX-License-Identifier: MIT

// Package matrix - cofactor (complement) engine.
//
// Purpose:
//   - Build the matrix of signed minors C[i][j] = (-1)^(i+j) · det(M_ij).
//   - Offer a bounded worker pool for the N² independent cells; the sequential
//     path is the reference and both produce identical values.
//
// Complexity quicksheet:
//   - N² determinants of order N-1: O(N² · (N-1)!) time.

package matrix

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// calcErrorf tags a nested failure at cell (i,j) so it matches both
// ErrCalculation and the underlying cause.
func calcErrorf(i, j int, err error) error {
	return fmt.Errorf("cell(%d,%d): %w: %w", i, j, ErrCalculation, err)
}

// Cofactors returns the cofactor (complement) matrix of a.
// Implementation:
//   - Stage 1: ValidateSquare(a).
//   - Stage 2: N=1 → [[1]] regardless of the cell value.
//   - Stage 3: N≥2 → every cell extracts its own minor and recurses through
//     Determinant; no intermediate minor is shared across cells.
//
// Behavior highlights:
//   - WithWorkers(n>1) computes cells concurrently; values are identical.
//   - On any nested failure the partial result is released and discarded.
//
// Errors:
//   - ErrIncorrectMatrix, ErrDimensionMismatch (non-square).
//   - ErrCalculation joined with the cause for nested minor/determinant failures.
//
// Notes:
//   - The 1×1 value is a convention, it is NOT det(a).
func Cofactors(a *Dense, opts ...Option) (*Dense, error) {
	return CofactorsContext(context.Background(), a, opts...)
}

// CofactorsContext is Cofactors with cancellation. ctx is checked between
// cells; a cancelled context aborts the call with ctx.Err().
func CofactorsContext(ctx context.Context, a *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	o := gatherOptions(opts...)

	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	if a.r == 1 {
		res.data[0] = 1

		return res, nil
	}

	if o.workers > 1 {
		err = cofactorsParallel(ctx, a, res, o.workers)
	} else {
		err = cofactorsSequential(ctx, a, res)
	}
	if err != nil {
		res.Release()

		return nil, matrixErrorf(opCofactors, err)
	}

	return res, nil
}

// cofactorAt computes the signed minor (-1)^(i+j) · det(Minor(a, i+1, j+1)).
func cofactorAt(a *Dense, i, j int) (float64, error) {
	sub, err := Minor(a, i+1, j+1)
	if err != nil {
		return 0, calcErrorf(i, j, err)
	}
	defer sub.Release()

	d, err := Determinant(sub)
	if err != nil {
		return 0, calcErrorf(i, j, err)
	}
	sign := 1.0
	if (i+j)%2 == 1 {
		sign = -1.0
	}

	return sign * d, nil
}

func cofactorsSequential(ctx context.Context, a, res *Dense) error {
	n := a.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := cofactorAt(a, i, j)
			if err != nil {
				return err
			}
			res.data[i*n+j] = v
		}
	}

	return nil
}

// cofactorsParallel fans the N² cells out over at most `workers` goroutines.
// Each goroutine writes only its own cell, so no locking is needed; reads of a
// are shared but a is never mutated. The first error cancels the rest.
func cofactorsParallel(ctx context.Context, a, res *Dense, workers int) error {
	n := a.r
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				v, err := cofactorAt(a, i, j)
				if err != nil {
					return err
				}
				res.data[i*n+j] = v

				return nil
			})
		}
	}

	return g.Wait()
}
