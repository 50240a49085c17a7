// SPDX-License-Identifier: MIT
// Package matrix provides the determinant of square integer matrices by
// recursive cofactor (Laplace) expansion. All entry points perform strict
// fail-fast validation and return wrapped sentinels on shape violations.
//
// Purpose:
//   - Exact integer determinants for small matrices (no floating point).
//   - Expansion along any row or column, so callers can cross-check results.
//
// Notes:
//   - Cost is O(n!) and recursion depth is n; intended for small inputs.
//   - Integer overflow is not detected; results wrap like any Go int product.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDeterminant           = "Determinant"
	opDeterminantAlongRow   = "DeterminantAlongRow"
	opDeterminantAlongCol   = "DeterminantAlongCol"
	opDeterminantConcurrent = "DeterminantConcurrent"
	opCofactor              = "Cofactor"
	opMinor                 = "Minor"
	opIdentity              = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Determinant returns det(m) by cofactor expansion along the first row.
// Implementation:
//   - Stage 1: ValidateSquare(m); nothing is computed on a shape violation.
//   - Stage 2: 1×1 returns the sole element; 2×2 returns a·d − b·c.
//   - Stage 3: for n > 2, for each column i of row 0 build the minor without
//     row 0 and column i, recurse, and accumulate m[0][i]·det(minor) with
//     sign (-1)^i (add on even i, subtract on odd i).
//
// Behavior highlights:
//   - Pure: m is never mutated; minors are fresh grids.
//   - Exact integer arithmetic.
//
// Inputs:
//   - m: square row-major grid of ints.
//
// Returns:
//   - int: the determinant.
//
// Errors:
//   - ErrEmptyMatrix (nil/zero rows), ErrNonSquare (rows != cols or ragged).
//
// Determinism:
//   - Fixed i-loop over columns 0..n-1.
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level, depth n.
//
// AI-Hints:
//   - Use DeterminantAlongRow/Col with a zero-heavy line to verify a result.
//   - For n > DefaultParallelThreshold consider DeterminantConcurrent; at or
//     below it DeterminantConcurrent runs this same sequential kernel.
func Determinant(m [][]int) (int, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det(m), nil
}

// DeterminantAlongRow returns det(m) by cofactor expansion along row.
// The value always equals Determinant(m); only the evaluation order differs.
//
// Errors: ErrEmptyMatrix, ErrNonSquare, ErrOutOfRange.
// Complexity: O(n!).
func DeterminantAlongRow(m [][]int, row int) (int, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminantAlongRow, err)
	}
	n := len(m)
	if err := ValidateIndex(row, n); err != nil {
		return 0, matrixErrorf(opDeterminantAlongRow, err)
	}
	if n == 1 {
		return m[0][0], nil
	}

	var sum int
	for c := 0; c < n; c++ {
		sum += cofactorSign(row+c) * m[row][c] * det(minorOf(m, row, c))
	}

	return sum, nil
}

// DeterminantAlongCol returns det(m) by cofactor expansion along col.
//
// Errors: ErrEmptyMatrix, ErrNonSquare, ErrOutOfRange.
// Complexity: O(n!).
func DeterminantAlongCol(m [][]int, col int) (int, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminantAlongCol, err)
	}
	n := len(m)
	if err := ValidateIndex(col, n); err != nil {
		return 0, matrixErrorf(opDeterminantAlongCol, err)
	}
	if n == 1 {
		return m[0][0], nil
	}

	var sum int
	for r := 0; r < n; r++ {
		sum += cofactorSign(r+col) * m[r][col] * det(minorOf(m, r, col))
	}

	return sum, nil
}

// Cofactor returns C[row,col] = (-1)^(row+col) · det(Minor(m, row, col)).
//
// Errors: ErrEmptyMatrix, ErrNonSquare, ErrOutOfRange, ErrMinorOfScalar.
func Cofactor(m [][]int, row, col int) (int, error) {
	minor, err := Minor(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return cofactorSign(row+col) * det(minor), nil
}

// det is the unchecked recursive kernel. Assumes m is square and non-empty.
func det(m [][]int) int {
	n := len(m)
	switch n {
	case 1:
		return m[0][0]
	case 2:
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}

	var sum int
	for i := 0; i < n; i++ { // expand along row 0
		term := m[0][i] * det(minorOf(m, 0, i))
		if i%2 == 0 {
			sum += term
		} else {
			sum -= term
		}
	}

	return sum
}

// cofactorSign returns (-1)^k.
func cofactorSign(k int) int {
	if k%2 == 0 {
		return 1
	}

	return -1
}
