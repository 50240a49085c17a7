// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Every operation returns one of these (wrapped with an operation tag);
// callers match with errors.Is. No operation panics on user input.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a vector is built from fewer than
	// MinDimension components.
	ErrInvalidDimension = errors.New("vector: a vector must have at least two dimensions")

	// ErrDimensionMismatch indicates a binary operation on vectors of different dimension.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrUnsupportedDimension is returned by CrossProduct for vectors that are not 3-dimensional.
	ErrUnsupportedDimension = errors.New("vector: cross product requires 3 dimensions")

	// ErrZeroVector is returned when a direction is required but the magnitude is 0
	// (Normalize, WithMagnitude, Projection onto zero, Angle with a zero vector).
	ErrZeroVector = errors.New("vector: zero magnitude")

	// ErrNaNInf signals a NaN or ±Inf component passed to a constructor.
	ErrNaNInf = errors.New("vector: NaN or Inf component")

	// ErrOutOfRange indicates a component index outside [0, Dimension()).
	ErrOutOfRange = errors.New("vector: index out of range")
)

// Operation name constants for unified error wrapping.
const (
	opNew           = "New"
	opZero          = "Zero"
	opWithMag       = "WithMagnitude"
	opAt            = "At"
	opAdd           = "Add"
	opSubtract      = "Subtract"
	opDot           = "DotProduct"
	opCross         = "CrossProduct"
	opNormalize     = "Normalize"
	opProjection    = "Projection"
	opComponent     = "Component"
	opAngle         = "Angle"
	opParallel      = "IsParallel"
	opPerpendicular = "IsPerpendicular"
)

// vectorErrorf wraps err with an operation tag, preserving it via %w.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mismatch reports both dimensions alongside ErrDimensionMismatch.
func mismatch(a, b int) error {
	return fmt.Errorf("%d != %d: %w", a, b, ErrDimensionMismatch)
}
