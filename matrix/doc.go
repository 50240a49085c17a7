// Package matrix computes exact determinants of square integer matrices.
//
// The matrix package provides:
//
//   - Determinant: cofactor (Laplace) expansion along the first row.
//   - DeterminantAlongRow / DeterminantAlongCol: the same value expanded along
//     any line, useful to cross-check a result or to pick a zero-heavy line.
//   - DeterminantConcurrent: first-row cofactors evaluated on a bounded
//     errgroup, cancellable through context.Context.
//   - Minor, Cofactor, Clone, Identity: small grid helpers.
//
// Matrices are plain [][]int values owned by the caller. Nothing in this
// package mutates its input; minors are always fresh grids.
//
// Cofactor expansion costs O(n!) and is meant for small matrices. There is no
// overflow detection: products wrap like ordinary Go int arithmetic.
//
// Errors are package sentinels (ErrNonSquare, ErrEmptyMatrix, ErrOutOfRange,
// ErrMinorOfScalar) wrapped with the failing operation's name; match them
// with errors.Is.
package matrix
