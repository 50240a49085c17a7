// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and reference implementations.
//   • Keep every fixture small enough for O(n!) kernels.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// MustDeterminant returns matrix.Determinant(m) or fails the test.
func MustDeterminant(t *testing.T, m [][]int) int {
	t.Helper()
	d, err := matrix.Determinant(m)
	require.NoError(t, err)

	return d
}

// RandomGrid builds an n×n grid with entries in [-9, 9] from a fixed seed.
func RandomGrid(tb testing.TB, n int, seed int64) [][]int {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := make([][]int, n)
	for i := 0; i < n; i++ {
		g[i] = make([]int, n)
		for j := 0; j < n; j++ {
			g[i][j] = rng.Intn(19) - 9
		}
	}

	return g
}

// leibniz is an independent reference: det = Σ_σ sgn(σ) Π m[i][σ(i)].
// Permutations are enumerated by Heap's algorithm with sign tracking.
func leibniz(m [][]int) int {
	n := len(m)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var sum int
	var walk func(k, sign int) int
	walk = func(k, sign int) int {
		if k == 1 {
			p := sign
			for i := 0; i < n; i++ {
				p *= m[i][perm[i]]
			}
			sum += p
			return sign
		}
		for i := 0; i < k-1; i++ {
			sign = walk(k-1, sign)
			if k%2 == 0 {
				perm[i], perm[k-1] = perm[k-1], perm[i]
			} else {
				perm[0], perm[k-1] = perm[k-1], perm[0]
			}
			sign = -sign
		}
		return walk(k-1, sign)
	}
	walk(n, 1)

	return sum
}

// transpose returns mᵀ for a square grid.
func transpose(m [][]int) [][]int {
	n := len(m)
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			out[i][j] = m[j][i]
		}
	}

	return out
}
