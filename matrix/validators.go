// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and index checks.
//  - Keep kernels minimal by delegating nil/empty/square/index checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    wrap once more with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateSquare is O(n) over row headers; no element is read.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is a non-empty n×n grid.
//
// Inputs: row-major integer grid.
// Errors: ErrEmptyMatrix if m is nil or has no rows,
// ErrNonSquare if any row length differs from len(m).
// Complexity: O(n).
// AI-Hints: Call before any kernel; every public entry point does.
func ValidateSquare(m [][]int) error {
	// Nil and zero-row grids have no first row to expand along.
	if len(m) == 0 {
		return validatorErrorf("ValidateSquare", ErrEmptyMatrix)
	}
	// Every row must be exactly n wide; ragged rows are a shape violation too.
	n := len(m)
	for i := 0; i < n; i++ {
		if len(m[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateSquare: row %d", i), ErrNonSquare)
		}
	}

	return nil
}

// ValidateIndex ensures idx lies in [0, n).
// Complexity: O(1).
func ValidateIndex(idx, n int) error {
	if idx < 0 || idx >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d)", idx), ErrOutOfRange)
	}

	return nil
}

// ValidateCell – Composite: Square → Index(row) → Index(col).
//
// Errors: ErrEmptyMatrix, ErrNonSquare, ErrOutOfRange.
// Complexity: O(n).
func ValidateCell(m [][]int, row, col int) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateCell", err)
	}
	n := len(m)
	if err := ValidateIndex(row, n); err != nil {
		return validatorErrorf("ValidateCell: row", err)
	}
	if err := ValidateIndex(col, n); err != nil {
		return validatorErrorf("ValidateCell: col", err)
	}

	return nil
}
