// SPDX-License-Identifier: MIT

// Package level2: functional configuration for the matrix-vector products.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strict validation (panic on nonsensical values).
//
// Options affect scheduling only. Every output element is accumulated in the
// same order whatever the worker count, so parallel and sequential runs give
// bit-identical results.
package level2

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers keeps products sequential.
	DefaultWorkers = 1

	// DefaultParallelThreshold is the minimum number of matrix elements
	// (rows·cols of op(A)) before work is split across workers.
	DefaultParallelThreshold = 1 << 16
)

// Options holds scheduling parameters for Gemv, Symv, Hemv and MatVec.
type Options struct {
	workers   int
	threshold int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers sets the number of goroutines output rows are split across.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("level2: WithWorkers(%d): need n ≥ 1", n))
	}

	return func(o *Options) { o.workers = n }
}

// WithParallelThreshold sets the minimum element count for splitting.
// Panics if elems < 0.
func WithParallelThreshold(elems int) Option {
	if elems < 0 {
		panic(fmt.Sprintf("level2: WithParallelThreshold(%d): need elems ≥ 0", elems))
	}

	return func(o *Options) { o.threshold = elems }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers, threshold: DefaultParallelThreshold}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
