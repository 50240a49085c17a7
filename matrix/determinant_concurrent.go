// SPDX-License-Identifier: MIT

package matrix

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DeterminantConcurrent returns det(m) like Determinant, evaluating the
// first-row cofactors on a bounded set of goroutines.
// Implementation:
//   - Stage 1: ValidateSquare(m); fail fast on a done ctx.
//   - Stage 2: orders <= ParallelThreshold run the sequential kernel.
//   - Stage 3: otherwise each column i of row 0 becomes one errgroup task
//     writing m[0][i]·det(minor) into terms[i]; SetLimit(Workers) bounds fan-out.
//   - Stage 4: sum terms in index order with sign (-1)^i.
//
// Behavior highlights:
//   - Same value as Determinant for every input; options change scheduling only.
//   - Zero entries in row 0 skip their minor entirely.
//   - Cancellation is observed before each cofactor starts; a running
//     cofactor finishes its own recursion.
//
// Errors:
//   - ErrEmptyMatrix, ErrNonSquare, ctx.Err() (all wrapped with the op tag).
//
// Complexity:
//   - Work O(n!), span O((n-1)!) with n workers.
func DeterminantConcurrent(ctx context.Context, m [][]int, opts ...Option) (int, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminantConcurrent, err)
	}
	if err := ctx.Err(); err != nil {
		return 0, matrixErrorf(opDeterminantConcurrent, err)
	}

	o := gatherOptions(opts...)
	n := len(m)
	if n <= o.threshold || n <= 2 {
		return det(m), nil
	}

	terms := make([]int, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		if m[0][i] == 0 {
			continue // term is zero whatever the minor is
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if o.onCofactor != nil {
				o.onCofactor(i)
			}
			terms[i] = m[0][i] * det(minorOf(m, 0, i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, matrixErrorf(opDeterminantConcurrent, err)
	}

	var sum int
	for i, term := range terms {
		sum += cofactorSign(i) * term
	}

	return sum, nil
}
