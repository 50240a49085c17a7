// SPDX-License-Identifier: MIT

// Package vector - componentwise arithmetic and products.
//
// Every method has a value receiver, leaves both operands untouched and
// returns a freshly built Vector (or a scalar).

package vector

import "fmt"

// sameDimension returns a wrapped ErrDimensionMismatch when v and o differ.
func sameDimension(tag string, v, o Vector) error {
	if v.dimension != o.dimension {
		return vectorErrorf(tag, mismatch(v.dimension, o.dimension))
	}

	return nil
}

// Add returns v + o.
// Errors: ErrDimensionMismatch.
func (v Vector) Add(o Vector) (Vector, error) {
	if err := sameDimension(opAdd, v, o); err != nil {
		return Vector{}, err
	}
	out := make([]float64, v.dimension)
	for i := range out {
		out[i] = v.coords[i] + o.coords[i]
	}

	return build(out), nil
}

// Subtract returns v − o.
// Errors: ErrDimensionMismatch.
func (v Vector) Subtract(o Vector) (Vector, error) {
	if err := sameDimension(opSubtract, v, o); err != nil {
		return Vector{}, err
	}
	out := make([]float64, v.dimension)
	for i := range out {
		out[i] = v.coords[i] - o.coords[i]
	}

	return build(out), nil
}

// Scale returns n·v.
func (v Vector) Scale(n float64) Vector {
	out := make([]float64, v.dimension)
	for i, x := range v.coords {
		out[i] = x * n
	}

	return build(out)
}

// Negate returns −v.
func (v Vector) Negate() Vector { return v.Scale(-1) }

// DotProduct returns Σ vᵢ·oᵢ.
// Errors: ErrDimensionMismatch.
func (v Vector) DotProduct(o Vector) (float64, error) {
	if err := sameDimension(opDot, v, o); err != nil {
		return 0, err
	}

	return dot(v, o), nil
}

// dot is the unchecked kernel; assumes equal dimensions.
func dot(v, o Vector) float64 {
	var sum float64
	for i, x := range v.coords {
		sum += x * o.coords[i]
	}

	return sum
}

// CrossProduct returns v × o for 3-dimensional vectors using the right-hand rule:
//
//	(v1·o2 − v2·o1, v2·o0 − v0·o2, v0·o1 − v1·o0)
//
// The result is orthogonal to both operands and o × v = −(v × o).
//
// Errors:
//   - ErrUnsupportedDimension unless both operands are 3-dimensional (no 7-D product).
//   - Differing dimensions match ErrDimensionMismatch as well, since at least
//     one side is then not 3-dimensional.
func (v Vector) CrossProduct(o Vector) (Vector, error) {
	if v.dimension != o.dimension {
		return Vector{}, vectorErrorf(opCross,
			fmt.Errorf("%w: %w", mismatch(v.dimension, o.dimension), ErrUnsupportedDimension))
	}
	if v.dimension != 3 {
		return Vector{}, vectorErrorf(opCross, ErrUnsupportedDimension)
	}
	a, b := v.coords, o.coords

	return build([]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}), nil
}

// Equal reports whether v and o have the same dimension and identical components.
func (v Vector) Equal(o Vector) bool {
	if v.dimension != o.dimension {
		return false
	}
	for i, x := range v.coords {
		if x != o.coords[i] {
			return false
		}
	}

	return true
}
