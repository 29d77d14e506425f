// SPDX-License-Identifier: MIT

package kernel

import "github.com/katalvlaran/lvinterp/limits"

const panicBoundaryInvalid = "kernel: WithBoundary: unknown policy"

// Option tunes a kernel at construction time.
type Option func(*Options)

// Options holds the resolved kernel configuration.
type Options struct {
	boundary  limits.Policy
	normalize bool
}

// WithBoundary sets the boundary hint carried by the kernel.
// Panics if p is not a built-in policy.
func WithBoundary(p limits.Policy) Option {
	if !p.Valid() {
		panic(panicBoundaryInvalid)
	}

	return func(o *Options) { o.boundary = p }
}

// WithNormalization rescales every weight vector so it sums to one.
// Useful for kernels that are only approximately a partition of unity.
func WithNormalization() Option {
	return func(o *Options) { o.normalize = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{boundary: limits.DefaultPolicy}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
