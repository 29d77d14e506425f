// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"github.com/katalvlaran/lvinterp/grid"
	"github.com/katalvlaran/lvinterp/kernel"
	"github.com/katalvlaran/lvinterp/limits"
)

// Nonseparable interpolates a 2-D source at coordinates produced by a
// Mapping of the destination pixel grid, typically an affine.Transform that
// mixes both axes.
//
// For destination pixel (i, j), (x, y) = tr.Apply(i, j); ker1 gives the row
// weights w1 over source rows near x and ker2 the column weights w2 over
// source columns near y. The neighbour (a, b) has weight w1[a]·w2[b].
//
// Direct:  dst[i,j] = Σ_a Σ_b w1[a]·w2[b]·src[I[a], J[b]]
// Adjoint: src-shaped dst[I[a], J[b]] += w1[a]·w2[b]·y[i,j]
//
// Both directions use the same per-pixel neighbour computation; the adjoint
// never goes through the inverse transform.
type Nonseparable struct {
	ker1, ker2 kernel.Kernel
	s1, s2     int
	b1, b2     limits.Boundary
	tr         Mapping
	in, out    [2]int
	workers    int
}

var _ Operator = (*Nonseparable)(nil)

// NewNonseparable builds the operator mapping a srcShape source to a
// dstShape destination. ker2 == nil reuses ker1 for columns. Without
// WithBoundaries the limits come from the kernels' boundary hints.
//
// Errors:
//   - ErrNilArgument for a nil ker1 or tr.
//   - ErrInvalidLength for a non-positive extent.
//   - ErrInvalidSupport for a kernel with support < 1.
//   - ErrDimensionMismatch when the boundaries do not fit srcShape.
func NewNonseparable(ker1, ker2 kernel.Kernel, tr Mapping, srcShape, dstShape [2]int, opts ...Option) (*Nonseparable, error) {
	if ker1 == nil || tr == nil {
		return nil, interpErrorf("NewNonseparable", ErrNilArgument)
	}
	if ker2 == nil {
		ker2 = ker1
	}
	for _, sh := range [][]int{srcShape[:], dstShape[:]} {
		if err := grid.ValidateShape(sh); err != nil {
			return nil, fmt.Errorf("NewNonseparable: %w (%w)", ErrInvalidLength, err)
		}
	}
	s1, s2 := ker1.Support(), ker2.Support()
	if s1 < 1 || s2 < 1 {
		return nil, interpErrorf("NewNonseparable", ErrInvalidSupport)
	}
	o := gatherOptions(opts...)

	var b1, b2 limits.Boundary
	if o.boundaries != nil {
		if len(o.boundaries) != 2 ||
			o.boundaries[0].Len() != srcShape[0] || o.boundaries[1].Len() != srcShape[1] {
			return nil, interpErrorf("NewNonseparable: boundaries", ErrDimensionMismatch)
		}
		b1, b2 = o.boundaries[0], o.boundaries[1]
	} else {
		l1, err := LimitsFor(ker1, srcShape[0])
		if err != nil {
			return nil, interpErrorf("NewNonseparable", err)
		}
		l2, err := LimitsFor(ker2, srcShape[1])
		if err != nil {
			return nil, interpErrorf("NewNonseparable", err)
		}
		b1, b2 = l1, l2
	}

	return &Nonseparable{
		ker1: ker1, ker2: ker2,
		s1: s1, s2: s2,
		b1: b1, b2: b2,
		tr:      tr,
		in:      srcShape,
		out:     dstShape,
		workers: o.workers,
	}, nil
}

// Kernels returns the row and column kernels.
func (op *Nonseparable) Kernels() (rows, cols kernel.Kernel) { return op.ker1, op.ker2 }

// Mapping returns the coordinate mapping.
func (op *Nonseparable) Mapping() Mapping { return op.tr }

// InputSize implements Operator.
func (op *Nonseparable) InputSize() []int { return []int{op.in[0], op.in[1]} }

// OutputSize implements Operator.
func (op *Nonseparable) OutputSize() []int { return []int{op.out[0], op.out[1]} }

// Apply implements Operator.
func (op *Nonseparable) Apply(mode Mode, src []float64) ([]float64, error) {
	return allocApply(op, mode, src)
}

// ApplyTo implements Operator.
func (op *Nonseparable) ApplyTo(dst []float64, mode Mode, src []float64) error {
	return op.ApplyScaled(1, mode, src, 0, dst)
}

// ApplyScaled implements Operator.
// Complexity: O(m1·m2·S1·S2) time; parallel adjoint uses O(workers·n1·n2).
func (op *Nonseparable) ApplyScaled(alpha float64, mode Mode, src []float64, beta float64, dst []float64) error {
	if err := checkBuffers("Nonseparable.ApplyScaled", op.InputSize(), op.OutputSize(), mode, src, dst); err != nil {
		return err
	}
	if alpha == 0 {
		scaleInPlace(beta, dst)

		return nil
	}
	if err := op.validate(); err != nil {
		return interpErrorf("Nonseparable.ApplyScaled", err)
	}
	if mode == Adjoint {
		scaleInPlace(beta, dst)

		return scatterReduce(op.out[0], op.workers, dst, func(lo, hi int, acc []float64) error {
			return op.adjoint(lo, hi, alpha, src, acc)
		})
	}

	return parallelFor(op.out[0], op.workers, func(lo, hi int) error {
		return op.direct(lo, hi, alpha, src, beta, dst)
	})
}

// pixelCoefs holds the scratch of one worker.
type pixelCoefs struct {
	i1, i2 []int
	w1, w2 []float64
}

func (op *Nonseparable) newPixelCoefs() *pixelCoefs {
	return &pixelCoefs{
		i1: make([]int, op.s1), w1: make([]float64, op.s1),
		i2: make([]int, op.s2), w2: make([]float64, op.s2),
	}
}

// pixel fills c with the neighbour sets of destination pixel (i, j).
func (op *Nonseparable) pixel(i, j int, c *pixelCoefs) error {
	x, y := op.tr.Apply(float64(i), float64(j))
	if err := coefs(op.ker1, op.s1, op.b1, x, c.i1, c.w1); err != nil {
		return fmt.Errorf("pixel (%d,%d) rows: %w", i, j, err)
	}
	if err := coefs(op.ker2, op.s2, op.b2, y, c.i2, c.w2); err != nil {
		return fmt.Errorf("pixel (%d,%d) cols: %w", i, j, err)
	}

	return nil
}

func (op *Nonseparable) validate() error {
	for i := 0; i < op.out[0]; i++ {
		for j := 0; j < op.out[1]; j++ {
			x, y := op.tr.Apply(float64(i), float64(j))
			if _, err := op.b1.Reduce(x, op.s1); err != nil {
				return fmt.Errorf("pixel (%d,%d) rows: %w", i, j, err)
			}
			if _, err := op.b2.Reduce(y, op.s2); err != nil {
				return fmt.Errorf("pixel (%d,%d) cols: %w", i, j, err)
			}
		}
	}

	return nil
}

// direct fills destination rows [lo, hi).
func (op *Nonseparable) direct(lo, hi int, alpha float64, src []float64, beta float64, dst []float64) error {
	c := op.newPixelCoefs()
	n2, m2 := op.in[1], op.out[1]
	for i := lo; i < hi; i++ {
		for j := 0; j < m2; j++ {
			if err := op.pixel(i, j, c); err != nil {
				return err
			}
			var sum float64
			for a, r := range c.i1 {
				row := src[r*n2 : (r+1)*n2]
				var s float64
				for b, col := range c.i2 {
					s += c.w2[b] * row[col]
				}
				sum += c.w1[a] * s
			}
			o := i*m2 + j
			dst[o] = combine(alpha, sum, beta, dst[o])
		}
	}

	return nil
}

// adjoint scatters destination rows [lo, hi) into acc (source-shaped).
func (op *Nonseparable) adjoint(lo, hi int, alpha float64, src, acc []float64) error {
	c := op.newPixelCoefs()
	n2, m2 := op.in[1], op.out[1]
	for i := lo; i < hi; i++ {
		for j := 0; j < m2; j++ {
			if err := op.pixel(i, j, c); err != nil {
				return err
			}
			v := alpha * src[i*m2+j]
			for a, r := range c.i1 {
				va := v * c.w1[a]
				row := acc[r*n2 : (r+1)*n2]
				for b, col := range c.i2 {
					row[col] += va * c.w2[b]
				}
			}
		}
	}

	return nil
}
