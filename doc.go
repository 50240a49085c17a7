// Package linalg is a pair of small, dependency-light linear-algebra
// building blocks.
//
// What is inside?
//
//	matrix/ — exact determinants of square integer matrices by cofactor
//	          (Laplace) expansion, along any row or column, optionally with
//	          the first-row cofactors evaluated concurrently.
//	vector/ — an immutable n-dimensional float64 vector: arithmetic,
//	          dot/cross products, normalization, projection, angles and
//	          parallel/perpendicular classification.
//
// The two subpackages are independent; import only what you need.
//
// Design rules shared by both:
//
//   - Inputs are never mutated; results are always fresh values.
//   - Misuse is reported through package sentinel errors (errors.Is),
//     wrapped with the name of the failing operation. Nothing panics on
//     user input.
//   - Tunables are functional options with documented Default* constants.
//
// Quick example:
//
//	d, _ := matrix.Determinant([][]int{{5, -3, 9}, {-1, 0, 4}, {7, 2, 4}}) // -154
//	v := vector.MustNew(3, 4)
//	u, _ := v.Normalize() // (0.6, 0.8)
//
//	go get github.com/katalvlaran/linalg
package linalg
