// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"github.com/katalvlaran/lvinterp/grid"
	"github.com/katalvlaran/lvinterp/kernel"
	"github.com/katalvlaran/lvinterp/limits"
)

// Separable interpolates an N-D array one axis at a time.
//
// Direct runs the 1-D operators along axes 0, 1, …, N-1; each step
// replaces the extent of its axis by the number of coordinates of that axis.
// Adjoint runs the adjoint 1-D operators along N-1, …, 0, which is the exact
// transpose of the composed map. The α/β combination is fused into the last
// step so intermediate buffers are the only extra memory.
type Separable struct {
	in, out []int
	axes    []line
	ops     []Operator // per-axis 1-D operators, for inspection
	workers int
}

var _ Operator = (*Separable)(nil)

// NewSeparable builds the operator for a source of shape srcShape with one
// coordinate set per axis. kers[k] is the kernel of axis k; axes beyond
// len(kers) use kers[0]. Without WithBoundaries, axis k uses
// limits.New(srcShape[k], kers[k].Boundary()).
//
// Errors:
//   - ErrInvalidLength for a non-positive extent (also matches grid.ErrInvalidShape).
//   - ErrNilArgument for no kernel, a nil kernel or a nil coordinate set.
//   - ErrDimensionMismatch when coords, kers or boundaries do not fit srcShape.
//   - ErrInvalidSupport for a kernel with support < 1.
func NewSeparable(srcShape []int, coords []Coordinates, kers []kernel.Kernel, opts ...Option) (*Separable, error) {
	if _, err := grid.Volume(srcShape); err != nil {
		return nil, fmt.Errorf("NewSeparable: %w (%w)", ErrInvalidLength, err)
	}
	rank := len(srcShape)
	if len(kers) == 0 {
		return nil, interpErrorf("NewSeparable: kernels", ErrNilArgument)
	}
	if len(coords) != rank || len(kers) > rank {
		return nil, interpErrorf("NewSeparable", ErrDimensionMismatch)
	}
	o := gatherOptions(opts...)
	if o.boundaries != nil && len(o.boundaries) != rank {
		return nil, interpErrorf("NewSeparable: boundaries", ErrDimensionMismatch)
	}

	sep := &Separable{
		in:      append([]int(nil), srcShape...),
		out:     make([]int, rank),
		axes:    make([]line, rank),
		ops:     make([]Operator, rank),
		workers: o.workers,
	}
	for k := 0; k < rank; k++ {
		ker := kers[0]
		if k < len(kers) {
			ker = kers[k]
		}
		if ker == nil || coords[k] == nil {
			return nil, fmt.Errorf("NewSeparable: axis %d: %w", k, ErrNilArgument)
		}
		var b limits.Boundary
		if o.boundaries != nil {
			b = o.boundaries[k]
			if b.Len() != srcShape[k] {
				return nil, fmt.Errorf("NewSeparable: axis %d boundary: %w", k, ErrDimensionMismatch)
			}
		} else {
			l, err := LimitsFor(ker, srcShape[k])
			if err != nil {
				return nil, fmt.Errorf("NewSeparable: axis %d: %w", k, err)
			}
			b = l
		}
		if coords[k].Len() < 1 {
			return nil, fmt.Errorf("NewSeparable: axis %d: %w", k, ErrDimensionMismatch)
		}
		// per-axis outputs are always 1-D, whatever the coordinate type
		sp, err := newSparse(ker, b, coords[k], []int{coords[k].Len()}, o.workers)
		if err != nil {
			return nil, fmt.Errorf("NewSeparable: axis %d: %w", k, err)
		}
		sep.out[k] = coords[k].Len()
		if o.tabulate {
			tab, err := sp.Tabulate()
			if err != nil {
				return nil, fmt.Errorf("NewSeparable: axis %d: %w", k, err)
			}
			sep.axes[k], sep.ops[k] = tab.line(), tab
		} else {
			sep.axes[k], sep.ops[k] = sp.line(), sp
		}
	}

	return sep, nil
}

// Rank returns the number of axes.
func (op *Separable) Rank() int { return len(op.in) }

// Axis returns the 1-D operator of axis k (*Sparse, or *Tabulated under
// WithTabulation). Panics if k is out of range.
func (op *Separable) Axis(k int) Operator { return op.ops[k] }

// InputSize implements Operator.
func (op *Separable) InputSize() []int { return append([]int(nil), op.in...) }

// OutputSize implements Operator.
func (op *Separable) OutputSize() []int { return append([]int(nil), op.out...) }

// Apply implements Operator.
func (op *Separable) Apply(mode Mode, src []float64) ([]float64, error) {
	return allocApply(op, mode, src)
}

// ApplyTo implements Operator.
func (op *Separable) ApplyTo(dst []float64, mode Mode, src []float64) error {
	return op.ApplyScaled(1, mode, src, 0, dst)
}

// ApplyScaled implements Operator.
// Complexity: O(Σ_k S_k · |intermediate_k|) time; one intermediate buffer
// per step except the last.
func (op *Separable) ApplyScaled(alpha float64, mode Mode, src []float64, beta float64, dst []float64) error {
	if err := checkBuffers("Separable.ApplyScaled", op.in, op.out, mode, src, dst); err != nil {
		return err
	}
	if alpha == 0 {
		scaleInPlace(beta, dst)

		return nil
	}
	for k, l := range op.axes {
		if err := l.cs.validate(); err != nil {
			return fmt.Errorf("Separable.ApplyScaled: axis %d: %w", k, err)
		}
	}

	rank := len(op.axes)
	cur := src
	if mode == Direct {
		shape := append([]int(nil), op.in...)
		for k := 0; k < rank; k++ {
			l := op.axes[k]
			pre, post := volume(shape[:k]), volume(shape[k+1:])
			if k == rank-1 {
				return l.apply(pre, post, alpha, Direct, cur, beta, dst)
			}
			next := make([]float64, pre*l.m*post)
			if err := l.apply(pre, post, 1, Direct, cur, 0, next); err != nil {
				return err
			}
			cur, shape[k] = next, l.m
		}

		return nil
	}

	shape := append([]int(nil), op.out...)
	for k := rank - 1; k >= 0; k-- {
		l := op.axes[k]
		pre, post := volume(shape[:k]), volume(shape[k+1:])
		if k == 0 {
			return l.apply(pre, post, alpha, Adjoint, cur, beta, dst)
		}
		next := make([]float64, pre*l.n*post)
		if err := l.apply(pre, post, 1, Adjoint, cur, 0, next); err != nil {
			return err
		}
		cur, shape[k] = next, l.n
	}

	return nil
}
