// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Public entry
// points wrap these with matrixErrorf(tag, err); callers still use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// empty -> shape -> index -> context cancellation.

var (
	// ErrEmptyMatrix is returned for a nil grid or a grid with zero rows.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (row count differs from column count, or rows are ragged).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrMinorOfScalar is returned when a minor is requested from a 1×1 matrix.
	ErrMinorOfScalar = errors.New("matrix: 1x1 matrix has no minor")
)

// ErrInvalidShape names the same condition as ErrNonSquare.
// Kept so errors.Is(err, ErrInvalidShape) reads naturally at call sites.
var ErrInvalidShape = ErrNonSquare
