// SPDX-License-Identifier: MIT

// Package vector: functional configuration for tolerance-based predicates.
// IsParallel, IsPerpendicular and ApproxEqual accept ...Option; everything
// else is option-free.
package vector

import "math"

// DefaultEpsilon is the absolute tolerance of the classification predicates.
const DefaultEpsilon = 1e-6

const panicEpsilonInvalid = "vector: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// Epsilon reports the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the absolute tolerance used by the predicates.
// Panics when eps is negative, NaN or ±Inf (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves the given setters on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters over defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, set := range user {
		set(&o)
	}

	return o
}
