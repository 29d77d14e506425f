// SPDX-License-Identifier: MIT

// Package interp: functional configuration for operator construction.
//
//   - WithWorkers: parallel application (errgroup); default sequential.
//   - WithBoundaries: explicit per-axis limits for Separable/Nonseparable,
//     overriding the kernels' boundary hints.
//   - WithTabulation: Separable precomputes every axis table.
//
// WithX constructors panic on nonsensical values (programmer error);
// shape disagreements surface later as ErrDimensionMismatch.

package interp

import "github.com/katalvlaran/lvinterp/limits"

// DefaultWorkers keeps application sequential, which is the reference
// summation order.
const DefaultWorkers = 1

const (
	panicWorkersInvalid  = "interp: WithWorkers: n must be >= 1"
	panicBoundaryNil     = "interp: WithBoundaries: nil boundary"
	panicBoundariesEmpty = "interp: WithBoundaries: no boundary given"
)

// Option mutates operator construction options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers    int
	boundaries []limits.Boundary
	tabulate   bool
}

// WithWorkers sets the number of goroutines used by apply calls.
// Direct mode partitions output positions; Adjoint mode scatters into
// per-worker buffers that are summed afterwards. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithBoundaries sets one boundary per source axis.
// Panics on an empty list or a nil entry.
func WithBoundaries(b ...limits.Boundary) Option {
	if len(b) == 0 {
		panic(panicBoundariesEmpty)
	}
	for _, x := range b {
		if x == nil {
			panic(panicBoundaryNil)
		}
	}
	cp := append([]limits.Boundary(nil), b...)

	return func(o *Options) { o.boundaries = cp }
}

// WithTabulation makes Separable precompute the (index, weight) table of
// every axis at construction time.
func WithTabulation() Option {
	return func(o *Options) { o.tabulate = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
