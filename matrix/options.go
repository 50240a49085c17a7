// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the concurrent determinant.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic results: options change scheduling only, never the value.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers of 0 means "resolve to runtime.GOMAXPROCS(0) at call time".
	DefaultWorkers = 0

	// DefaultParallelThreshold is the largest order still computed sequentially
	// by DeterminantConcurrent. Below 5×5 the goroutine overhead dominates.
	DefaultParallelThreshold = 4
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid   = "matrix: WithWorkers: k must be >= 1"
	panicThresholdInvalid = "matrix: WithParallelThreshold: n must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	workers   int // >= 1 after gatherOptions
	threshold int // >= 1

	onCofactor func(col int) // called as each first-row cofactor task starts; nil in production
}

// Workers reports the resolved worker bound.
func (o Options) Workers() int { return o.workers }

// ParallelThreshold reports the resolved sequential cut-off order.
func (o Options) ParallelThreshold() int { return o.threshold }

// WithWorkers bounds the number of cofactors evaluated at the same time.
// Panics when k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = k }
}

// WithParallelThreshold sets the largest order computed sequentially.
// Use 1 to force the parallel path for every matrix larger than 1×1
// (tests rely on this to exercise fan-out on small fixtures).
// Panics when n < 1.
func WithParallelThreshold(n int) Option {
	if n < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = n }
}

// withCofactorHook installs a callback run at the start of every
// DeterminantConcurrent cofactor task, after its cancellation check.
func withCofactorHook(fn func(col int)) Option {
	return func(o *Options) { o.onCofactor = fn }
}

// NewOptions resolves the given setters on top of the defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters over defaults and finalizes derived values.
// Last-writer-wins. DefaultWorkers resolves to GOMAXPROCS here so the value is
// never zero past this point.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:   DefaultWorkers,
		threshold: DefaultParallelThreshold,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
