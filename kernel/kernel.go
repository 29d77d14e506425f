// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"

	"github.com/katalvlaran/lvinterp/limits"
)

// Kernel is the weight-generating capability consumed by the interpolation
// operators.
type Kernel interface {
	// Support returns the number S of samples touched per evaluation (>= 1).
	Support() int

	// Weights fills w[0:S] with the weights for fractional offset t, following
	// the package weight convention. len(w) must be at least S.
	Weights(t float64, w []float64)

	// Boundary returns the boundary-extension hint of the kernel.
	Boundary() limits.Policy
}

// Func is a Kernel defined by a shape function φ(u) centred at zero.
type Func struct {
	name      string
	support   int
	center    int // (support-1)/2
	phi       func(u float64) float64
	boundary  limits.Policy
	normalize bool
}

var _ Kernel = (*Func)(nil)

// New builds a kernel from a shape function.
//
// Errors:
//   - ErrInvalidSupport if support < 1.
//   - ErrNilShape if phi is nil.
func New(name string, support int, phi func(u float64) float64, opts ...Option) (*Func, error) {
	if support < 1 {
		return nil, fmt.Errorf("New(%q, %d): %w", name, support, ErrInvalidSupport)
	}
	if phi == nil {
		return nil, fmt.Errorf("New(%q): %w", name, ErrNilShape)
	}
	o := gatherOptions(opts...)

	return &Func{
		name:      name,
		support:   support,
		center:    (support - 1) / 2,
		phi:       phi,
		boundary:  o.boundary,
		normalize: o.normalize,
	}, nil
}

// mustNew is used by the catalog, whose arguments are known to be valid.
func mustNew(name string, support int, phi func(u float64) float64, opts ...Option) *Func {
	k, err := New(name, support, phi, opts...)
	if err != nil {
		panic(err)
	}

	return k
}

// Support implements Kernel.
func (k *Func) Support() int { return k.support }

// Boundary implements Kernel.
func (k *Func) Boundary() limits.Policy { return k.boundary }

// Weights implements Kernel.
func (k *Func) Weights(t float64, w []float64) {
	_ = w[k.support-1]
	base := t + float64(k.center)
	var sum float64
	for o := 0; o < k.support; o++ {
		w[o] = k.phi(base - float64(o))
		sum += w[o]
	}
	if k.normalize && sum != 0 {
		for o := 0; o < k.support; o++ {
			w[o] /= sum
		}
	}
}

// Eval returns φ(u).
func (k *Func) Eval(u float64) float64 { return k.phi(u) }

// With returns a copy of k with additional options applied on top of the
// current configuration.
func (k *Func) With(opts ...Option) *Func {
	o := Options{boundary: k.boundary, normalize: k.normalize}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	c := *k
	c.boundary, c.normalize = o.boundary, o.normalize

	return &c
}

// String implements fmt.Stringer.
func (k *Func) String() string {
	return fmt.Sprintf("%s(S=%d, %v)", k.name, k.support, k.boundary)
}
