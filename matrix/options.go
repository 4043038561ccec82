// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the cofactor and inverse
// engines. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state; every option yields
//     bit-identical results, options only change how work is scheduled.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Numeric tolerances (Epsilon, SingularTolerance) are fixed constants and are
// deliberately not exposed here.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultWorkers is the number of goroutines the cofactor engine uses.
// 1 selects the sequential path.
const DefaultWorkers = 1

const panicWorkersInvalid = "matrix: WithWorkers: n must be >= 1"

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int // >= 1; DefaultWorkers
}

// WithWorkers sets how many cofactor cells are computed concurrently.
// Implementation:
//   - Stage 1: validate n ≥ 1 (panics otherwise).
//   - Stage 2: return a setter writing workers.
//
// Notes:
//   - The N² cells are independent; any n yields the same matrix.
//   - Values above N² are accepted; surplus workers simply stay idle.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// Workers reports the resolved worker count.
func (o Options) Workers() int { return o.workers }

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
