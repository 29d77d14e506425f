// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"

	"github.com/katalvlaran/lvinterp/kernel"
	"github.com/katalvlaran/lvinterp/limits"
)

// Sparse is the 1-D band-sparse interpolation operator. Neighbour sets are
// computed on the fly from the coordinates, so nothing but the inputs is
// stored.
//
// Direct:  dst[p] = Σ_k w_p[k]·src[idx_p[k]]
// Adjoint: dst[idx_p[k]] += w_p[k]·src[p]
//
// Sparse is immutable and safe for concurrent use on distinct destinations.
type Sparse struct {
	ker      kernel.Kernel
	bnd      limits.Boundary
	coords   Coordinates
	s        int
	outShape []int
	workers  int
}

var (
	_ Operator   = (*Sparse)(nil)
	_ coefSource = (*Sparse)(nil)
)

// NewSparse builds the operator interpolating a source of length b.Len() at
// the given coordinates.
//
// Errors:
//   - ErrNilArgument for a nil kernel, boundary or coordinate set.
//   - ErrInvalidSupport if the kernel support is < 1.
//   - ErrDimensionMismatch if a Shaper coordinate set reports a shape whose
//     volume differs from Len().
func NewSparse(k kernel.Kernel, b limits.Boundary, coords Coordinates, opts ...Option) (*Sparse, error) {
	if coords == nil {
		return nil, interpErrorf("NewSparse", ErrNilArgument)
	}
	out, err := outputShape(coords)
	if err != nil {
		return nil, interpErrorf("NewSparse", err)
	}
	o := gatherOptions(opts...)
	sp, err := newSparse(k, b, coords, out, o.workers)
	if err != nil {
		return nil, interpErrorf("NewSparse", err)
	}

	return sp, nil
}

func newSparse(k kernel.Kernel, b limits.Boundary, coords Coordinates, outShape []int, workers int) (*Sparse, error) {
	if k == nil || b == nil || coords == nil {
		return nil, ErrNilArgument
	}
	s := k.Support()
	if s < 1 {
		return nil, fmt.Errorf("support %d: %w", s, ErrInvalidSupport)
	}
	if b.Len() < 1 {
		return nil, ErrInvalidLength
	}

	return &Sparse{ker: k, bnd: b, coords: coords, s: s, outShape: outShape, workers: workers}, nil
}

// outputShape returns the shape implied by a coordinate set.
func outputShape(c Coordinates) ([]int, error) {
	n := c.Len()
	if n < 0 {
		return nil, ErrDimensionMismatch
	}
	sh, ok := c.(Shaper)
	if !ok {
		return []int{n}, nil
	}
	shape := sh.Shape()
	if volume(shape) != n {
		return nil, ErrDimensionMismatch
	}

	return shape, nil
}

// Kernel returns the interpolation kernel.
func (op *Sparse) Kernel() kernel.Kernel { return op.ker }

// Boundary returns the source limits.
func (op *Sparse) Boundary() limits.Boundary { return op.bnd }

// Coordinates returns the coordinate set.
func (op *Sparse) Coordinates() Coordinates { return op.coords }

// InputSize implements Operator.
func (op *Sparse) InputSize() []int { return []int{op.bnd.Len()} }

// OutputSize implements Operator.
func (op *Sparse) OutputSize() []int { return append([]int(nil), op.outShape...) }

// Apply implements Operator.
func (op *Sparse) Apply(mode Mode, src []float64) ([]float64, error) {
	return allocApply(op, mode, src)
}

// ApplyTo implements Operator.
func (op *Sparse) ApplyTo(dst []float64, mode Mode, src []float64) error {
	return op.ApplyScaled(1, mode, src, 0, dst)
}

// ApplyScaled implements Operator.
//
// Errors: ErrInvalidMode, ErrDimensionMismatch, ErrOutOfRangeCoordinate;
// all are reported before dst is modified.
// Complexity: O(m·S) time; O(S) scratch sequentially, O(workers·n) for a
// parallel adjoint.
func (op *Sparse) ApplyScaled(alpha float64, mode Mode, src []float64, beta float64, dst []float64) error {
	if err := checkBuffers("Sparse.ApplyScaled", op.InputSize(), op.outShape, mode, src, dst); err != nil {
		return err
	}

	return op.line().apply(1, 1, alpha, mode, src, beta, dst)
}

// Tabulate precomputes the operator into an equivalent Tabulated.
func (op *Sparse) Tabulate() (*Tabulated, error) {
	return newTabulated(op.ker, op.bnd, op.coords, op.outShape, op.workers)
}

func (op *Sparse) line() line {
	return line{cs: op, n: op.bnd.Len(), m: op.coords.Len(), workers: op.workers}
}

func (op *Sparse) support() int { return op.s }

func (op *Sparse) coefs(p int, idx []int, w []float64) ([]int, []float64, error) {
	if err := coefs(op.ker, op.s, op.bnd, op.coords.At(p), idx, w); err != nil {
		return nil, nil, fmt.Errorf("position %d: %w", p, err)
	}

	return idx, w, nil
}

func (op *Sparse) validate() error {
	for p, m := 0, op.coords.Len(); p < m; p++ {
		if _, err := op.bnd.Reduce(op.coords.At(p), op.s); err != nil {
			return fmt.Errorf("position %d: %w", p, err)
		}
	}

	return nil
}
