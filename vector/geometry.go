// SPDX-License-Identifier: MIT

// Package vector - direction, projection, angles and classification.
//
// Numeric policy:
//   - Operations that need a direction reject zero vectors with ErrZeroVector
//     instead of producing ±Inf/NaN components.
//   - Angle clamps the cosine into [-1, 1] so rounding drift never yields NaN.

package vector

import "math"

// Normalize returns the unit vector in the direction of v.
// Errors: ErrZeroVector when v has magnitude 0 (including the empty vector).
func (v Vector) Normalize() (Vector, error) {
	if v.magnitude == 0 {
		return Vector{}, vectorErrorf(opNormalize, ErrZeroVector)
	}

	out := make([]float64, v.dimension)
	for i, x := range v.coords {
		out[i] = x / v.magnitude
	}

	return build(out), nil
}

// Projection returns the vector projection of v onto u:
//
//	proj_u(v) = (v·u / |u|) · û
//
// Errors:
//   - ErrDimensionMismatch when dimensions differ.
//   - ErrZeroVector when u has magnitude 0.
func (v Vector) Projection(u Vector) (Vector, error) {
	if err := sameDimension(opProjection, v, u); err != nil {
		return Vector{}, err
	}
	unit, err := u.Normalize()
	if err != nil {
		return Vector{}, vectorErrorf(opProjection, err)
	}

	return unit.Scale(dot(v, u) / u.magnitude), nil
}

// Component returns |proj_u(v)|, the length of v's projection onto u.
// The result is never negative.
// Errors: as Projection.
func (v Vector) Component(u Vector) (float64, error) {
	p, err := v.Projection(u)
	if err != nil {
		return 0, vectorErrorf(opComponent, err)
	}

	return p.magnitude, nil
}

// Angle returns the angle between v and o in radians, in [0, π].
// Implementation:
//   - Stage 1: dimensions must match; neither vector may be zero.
//   - Stage 2: cos = v·o / (|v|·|o|), clamped into [-1, 1].
//   - Stage 3: return acos(cos).
//
// Errors: ErrDimensionMismatch, ErrZeroVector.
func (v Vector) Angle(o Vector) (float64, error) {
	if err := sameDimension(opAngle, v, o); err != nil {
		return 0, err
	}
	if v.magnitude == 0 || o.magnitude == 0 {
		return 0, vectorErrorf(opAngle, ErrZeroVector)
	}
	cos := dot(v, o) / (v.magnitude * o.magnitude)

	return math.Acos(math.Max(-1, math.Min(1, cos))), nil
}

// AngleDegrees returns Angle(o) converted to degrees.
// Errors: as Angle.
func (v Vector) AngleDegrees(o Vector) (float64, error) {
	rad, err := v.Angle(o)
	if err != nil {
		return 0, err
	}

	return rad * 180 / math.Pi, nil
}

// IsParallel reports whether v and o point the same way:
// |v·o − |v|·|o|| ≤ eps (DefaultEpsilon unless WithEpsilon is given).
// Anti-parallel vectors are not parallel under this definition; a zero vector
// is parallel to everything.
//
// Errors: ErrDimensionMismatch.
func (v Vector) IsParallel(o Vector, opts ...Option) (bool, error) {
	if err := sameDimension(opParallel, v, o); err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps

	return math.Abs(dot(v, o)-v.magnitude*o.magnitude) <= eps, nil
}

// IsPerpendicular reports whether |v·o| ≤ eps.
// Errors: ErrDimensionMismatch.
func (v Vector) IsPerpendicular(o Vector, opts ...Option) (bool, error) {
	if err := sameDimension(opPerpendicular, v, o); err != nil {
		return false, err
	}
	eps := gatherOptions(opts...).eps

	return math.Abs(dot(v, o)) <= eps, nil
}

// ApproxEqual reports whether v and o have the same dimension and every
// component differs by at most eps. Vectors of different dimension are never equal.
func (v Vector) ApproxEqual(o Vector, opts ...Option) bool {
	if v.dimension != o.dimension {
		return false
	}
	eps := gatherOptions(opts...).eps
	for i, x := range v.coords {
		if math.Abs(x-o.coords[i]) > eps {
			return false
		}
	}

	return true
}
