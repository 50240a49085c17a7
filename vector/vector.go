// SPDX-License-Identifier: MIT

// Package vector - immutable n-dimensional vector & constructors.
//
// Purpose:
//   - Hold coordinates in an unexported slice that is never aliased to caller
//     memory and never written after construction.
//   - Compute magnitude and dimension exactly once, in build, so they can
//     never drift from the coordinates.
//
// Complexity quicksheet:
//   - New/Copy/Zero: O(d); Magnitude/Dimension: O(1); Coordinates: O(d) copy.

package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MinDimension is the smallest dimension accepted by the public constructors.
const MinDimension = 2

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "("
	_fmtClose = ")"
	_fmtSep   = ", "
)

// Vector is an immutable Euclidean vector of float64 components.
//   - coords is owned by the Vector; no method writes to it.
//   - magnitude and dimension are derived once by build.
//
// The zero value is the 0-dimensional empty vector (magnitude 0). Binary
// operations with it fail with ErrDimensionMismatch unless the other operand
// is empty too.
//
// Vector values are safe for concurrent use.
type Vector struct {
	coords    []float64
	magnitude float64
	dimension int
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Vector{}

// New returns a Vector with the given components.
// Implementation:
//   - Stage 1: require len(components) >= MinDimension.
//   - Stage 2: reject NaN/±Inf components.
//   - Stage 3: copy components and derive magnitude/dimension.
//
// Errors:
//   - ErrInvalidDimension (fewer than two components).
//   - ErrNaNInf (non-finite component).
//
// Complexity:
//   - Time O(d), Space O(d).
func New(components ...float64) (Vector, error) {
	if len(components) < MinDimension {
		return Vector{}, vectorErrorf(opNew, fmt.Errorf("got %d: %w", len(components), ErrInvalidDimension))
	}
	for i, x := range components {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Vector{}, vectorErrorf(opNew, fmt.Errorf("component %d: %w", i, ErrNaNInf))
		}
	}

	return build(append([]float64(nil), components...)), nil
}

// MustNew is like New but panics on error. Intended for fixtures and
// package-level literals whose components are known to be valid.
func MustNew(components ...float64) Vector {
	v, err := New(components...)
	if err != nil {
		panic(err)
	}

	return v
}

// Zero returns the n-dimensional zero vector.
// Errors: ErrInvalidDimension when n < MinDimension.
func Zero(n int) (Vector, error) {
	if n < MinDimension {
		return Vector{}, vectorErrorf(opZero, fmt.Errorf("got %d: %w", n, ErrInvalidDimension))
	}

	return build(make([]float64, n)), nil
}

// Copy returns an independent Vector equal to v.
func Copy(v Vector) Vector {
	return build(append([]float64(nil), v.coords...))
}

// WithMagnitude returns v rescaled to magnitude |target| in the direction of v
// (opposite direction for a negative target).
//
// Errors: ErrZeroVector when v has no direction (propagated from Normalize).
func WithMagnitude(v Vector, target float64) (Vector, error) {
	unit, err := v.Normalize()
	if err != nil {
		return Vector{}, vectorErrorf(opWithMag, err)
	}

	return unit.Scale(target), nil
}

// build takes ownership of coords and derives the cached fields.
// Every Vector in this package is created here.
func build(coords []float64) Vector {
	var sum float64
	for _, x := range coords {
		sum += x * x
	}

	return Vector{
		coords:    coords,
		magnitude: math.Sqrt(sum),
		dimension: len(coords),
	}
}

// Magnitude returns the Euclidean norm, computed at construction.
func (v Vector) Magnitude() float64 { return v.magnitude }

// Dimension returns the number of components.
func (v Vector) Dimension() int { return v.dimension }

// Coordinates returns a copy of the components.
func (v Vector) Coordinates() []float64 {
	return append([]float64(nil), v.coords...)
}

// At returns the i-th component.
// Errors: ErrOutOfRange when i is outside [0, Dimension()).
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= v.dimension {
		return 0, vectorErrorf(opAt, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}

	return v.coords[i], nil
}

// String renders v as "(x0, x1, ...)" using the shortest exact float format.
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.coords {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteString(_fmtClose)

	return b.String()
}
