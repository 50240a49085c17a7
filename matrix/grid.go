// SPDX-License-Identifier: MIT

// Package matrix - integer grid helpers & minor extraction.
//
// Purpose:
//   - Treat [][]int as a caller-owned, read-only row-major grid.
//   - Materialize minors as fresh grids (explicit row/column deletion); the
//     input is never mutated or aliased.
//
// Complexity quicksheet:
//   - Clone: O(n^2); Identity: O(n^2); Minor: O(n^2).

package matrix

// Clone returns a deep copy of m. A nil grid clones to nil.
// Rows keep their individual lengths, so ragged input stays ragged.
func Clone(m [][]int) [][]int {
	if m == nil {
		return nil
	}
	out := make([][]int, len(m))
	for i := range m {
		out[i] = append([]int(nil), m[i]...)
	}

	return out
}

// Identity returns the n×n identity grid I_n.
// Errors: ErrEmptyMatrix when n < 1.
func Identity(n int) ([][]int, error) {
	if n < 1 {
		return nil, matrixErrorf(opIdentity, ErrEmptyMatrix)
	}
	I := make([][]int, n)
	for i := 0; i < n; i++ { // fixed i order; one write per diagonal cell
		I[i] = make([]int, n)
		I[i][i] = 1
	}

	return I, nil
}

// Minor returns the (n-1)×(n-1) grid obtained by deleting row and col from m.
// Implementation:
//   - Stage 1: ValidateCell(m, row, col); reject 1×1 input (no minor exists).
//   - Stage 2: delegate to the unchecked kernel minorOf.
//
// Behavior highlights:
//   - Result never shares backing arrays with m.
//
// Errors:
//   - ErrEmptyMatrix, ErrNonSquare, ErrOutOfRange, ErrMinorOfScalar.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func Minor(m [][]int, row, col int) ([][]int, error) {
	if err := ValidateCell(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if len(m) == 1 {
		return nil, matrixErrorf(opMinor, ErrMinorOfScalar)
	}

	return minorOf(m, row, col), nil
}

// minorOf is the unchecked kernel behind Minor and the determinant recursion.
// Rows other than row keep their relative order; within each row the columns
// are copied left to right skipping col.
// Assumes m is square with n >= 2 and row/col in range.
func minorOf(m [][]int, row, col int) [][]int {
	n := len(m)
	out := make([][]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		dst := make([]int, 0, n-1)
		dst = append(dst, m[i][:col]...)   // columns left of the deleted one
		dst = append(dst, m[i][col+1:]...) // columns right of the deleted one
		out = append(out, dst)
	}

	return out
}
