// Package vector implements an immutable n-dimensional Euclidean vector.
//
// A Vector is built from two or more finite float64 components. Its
// magnitude and dimension are computed once, at construction, and every
// operation returns a new Vector instead of modifying its receiver:
//
//   - arithmetic: Add, Subtract, Scale, Negate;
//   - products: DotProduct, CrossProduct (3 dimensions only);
//   - direction: Normalize, WithMagnitude, Projection, Component;
//   - angles: Angle (radians), AngleDegrees;
//   - classification: IsParallel, IsPerpendicular, Equal, ApproxEqual.
//
// Binary operations require equal dimensions and report ErrDimensionMismatch
// otherwise. Operations that need a direction reject zero vectors with
// ErrZeroVector. Tolerance-based predicates default to DefaultEpsilon and
// accept WithEpsilon.
//
// Quick example:
//
//	a := vector.MustNew(1, 0, 0)
//	b := vector.MustNew(0, 1, 0)
//	c, _ := a.CrossProduct(b) // (0, 0, 1)
package vector
