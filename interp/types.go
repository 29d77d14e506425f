// SPDX-License-Identifier: MIT

package interp

import (
	"math"

	"github.com/katalvlaran/lvinterp/grid"
)

// Mode selects forward interpolation or its exact transpose.
type Mode int

const (
	// Direct interpolates: dst[p] = Σ w·src[idx].
	Direct Mode = iota

	// Adjoint scatters: dst[idx] += w·src[p].
	Adjoint
)

// Valid reports whether m is Direct or Adjoint.
func (m Mode) Valid() bool { return m == Direct || m == Adjoint }

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Direct:
		return "Direct"
	case Adjoint:
		return "Adjoint"
	default:
		return "Mode(?)"
	}
}

// Operator is the contract shared by every interpolation operator.
//
// All buffers are flat row-major []float64. In Direct mode src has
// InputSize() and dst has OutputSize(); Adjoint swaps the two.
type Operator interface {
	// InputSize returns the shape of the sampled source array.
	InputSize() []int

	// OutputSize returns the shape of the interpolated result.
	OutputSize() []int

	// Apply allocates and returns op(src).
	Apply(mode Mode, src []float64) ([]float64, error)

	// ApplyTo overwrites dst with op(src).
	ApplyTo(dst []float64, mode Mode, src []float64) error

	// ApplyScaled computes dst = alpha·op(src) + beta·dst. beta == 0 never
	// reads dst; alpha == 0 skips the operator and only scales dst.
	ApplyScaled(alpha float64, mode Mode, src []float64, beta float64, dst []float64) error
}

// Mapping maps a destination pixel (i, j) to a source coordinate (x, y).
// affine.Transform satisfies it.
type Mapping interface {
	Apply(i, j float64) (x, y float64)
}

// Coordinates produces the interpolation coordinate of each output position.
// Implementations must be finite, restartable and free of side effects.
type Coordinates interface {
	Len() int
	At(p int) float64
}

// Shaper is implemented by coordinate sets whose output has more than one
// axis. Operators built from a Shaper report its shape as OutputSize.
type Shaper interface {
	Shape() []int
}

// Points is a materialized coordinate array.
type Points []float64

// Len implements Coordinates.
func (c Points) Len() int { return len(c) }

// At implements Coordinates.
func (c Points) At(p int) float64 { return c[p] }

// Positional generates coordinates from the output index, without
// materializing them.
type Positional struct {
	n  int
	fn func(p int) float64
}

// NewPositional returns n coordinates produced by fn(0..n-1).
func NewPositional(n int, fn func(p int) float64) (*Positional, error) {
	if fn == nil {
		return nil, interpErrorf("NewPositional", ErrNilArgument)
	}
	if n < 0 {
		return nil, interpErrorf("NewPositional", ErrDimensionMismatch)
	}

	return &Positional{n: n, fn: fn}, nil
}

// Uniform returns n coordinates x0, x0+dx, x0+2dx, …
// Panics on negative n or non-finite x0/dx (programmer error).
func Uniform(n int, x0, dx float64) *Positional {
	if n < 0 || math.IsNaN(x0) || math.IsInf(x0, 0) || math.IsNaN(dx) || math.IsInf(dx, 0) {
		panic("interp: Uniform: invalid arguments")
	}

	return &Positional{n: n, fn: func(p int) float64 { return x0 + float64(p)*dx }}
}

// Len implements Coordinates.
func (c *Positional) Len() int { return c.n }

// At implements Coordinates.
func (c *Positional) At(p int) float64 { return c.fn(p) }

// GridPoints takes coordinates from a grid.Array; the operator output then
// has the array's shape.
type GridPoints struct {
	a *grid.Array
}

// FromArray wraps a (no copy).
func FromArray(a *grid.Array) GridPoints { return GridPoints{a: a} }

// Len implements Coordinates.
func (c GridPoints) Len() int {
	if c.a == nil {
		return 0
	}

	return c.a.Len()
}

// At implements Coordinates.
func (c GridPoints) At(p int) float64 { return c.a.Data()[p] }

// Shape implements Shaper.
func (c GridPoints) Shape() []int {
	if c.a == nil {
		return []int{0}
	}

	return c.a.Shape()
}
