// SPDX-License-Identifier: MIT

package interp

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvinterp/grid"
	"github.com/katalvlaran/lvinterp/kernel"
	"github.com/katalvlaran/lvinterp/limits"
)

// Apply allocates and returns op(src).
func Apply(op Operator, mode Mode, src []float64) ([]float64, error) {
	if op == nil {
		return nil, interpErrorf("Apply", ErrNilArgument)
	}

	return op.Apply(mode, src)
}

// ApplyTo overwrites dst with op(src).
func ApplyTo(dst []float64, op Operator, mode Mode, src []float64) error {
	if op == nil {
		return interpErrorf("ApplyTo", ErrNilArgument)
	}

	return op.ApplyTo(dst, mode, src)
}

// ApplyScaled computes dst = alpha·op(src) + beta·dst.
func ApplyScaled(alpha float64, op Operator, mode Mode, src []float64, beta float64, dst []float64) error {
	if op == nil {
		return interpErrorf("ApplyScaled", ErrNilArgument)
	}

	return op.ApplyScaled(alpha, mode, src, beta, dst)
}

// ApplyArray applies op to a shaped array. The shape of src must equal
// InputSize (Direct) or OutputSize (Adjoint); the result carries the other
// one.
func ApplyArray(op Operator, mode Mode, src *grid.Array) (*grid.Array, error) {
	if op == nil || src == nil {
		return nil, interpErrorf("ApplyArray", ErrNilArgument)
	}
	if !mode.Valid() {
		return nil, interpErrorf("ApplyArray", ErrInvalidMode)
	}
	in, out := op.InputSize(), op.OutputSize()
	if mode == Adjoint {
		in, out = out, in
	}
	if !grid.SameShape(src.Shape(), in) {
		return nil, interpErrorf("ApplyArray", ErrDimensionMismatch)
	}
	var dst *grid.Array
	var err error
	if grid.SameShape(in, out) {
		dst, err = grid.Like(src)
	} else {
		dst, err = grid.New(out...)
	}
	if err != nil {
		return nil, interpErrorf("ApplyArray", err)
	}
	if err = op.ApplyTo(dst.Data(), mode, src.Data()); err != nil {
		return nil, err
	}

	return dst, nil
}

// Interpolate samples src at xs in one shot.
func Interpolate(k kernel.Kernel, b limits.Boundary, xs []float64, src []float64) ([]float64, error) {
	op, err := NewSparse(k, b, Points(xs))
	if err != nil {
		return nil, interpErrorf("Interpolate", err)
	}

	return op.Apply(Direct, src)
}

// Matrix materializes op in the given mode as a dense matrix, one column per
// unit input vector: Matrix(op, Adjoint) is the transpose of
// Matrix(op, Direct) up to rounding.
// Complexity: O(nIn) applications; intended for inspection and tests.
func Matrix(op Operator, mode Mode) (*mat.Dense, error) {
	if op == nil {
		return nil, interpErrorf("Matrix", ErrNilArgument)
	}
	if !mode.Valid() {
		return nil, interpErrorf("Matrix", ErrInvalidMode)
	}
	rows, cols := volume(op.OutputSize()), volume(op.InputSize())
	if mode == Adjoint {
		rows, cols = cols, rows
	}
	if rows == 0 || cols == 0 {
		return nil, interpErrorf("Matrix", ErrDimensionMismatch)
	}
	a := mat.NewDense(rows, cols, nil)
	e := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		e[j] = 1
		if err := op.ApplyTo(col, mode, e); err != nil {
			return nil, interpErrorf("Matrix", err)
		}
		a.SetCol(j, col)
		e[j] = 0
	}

	return a, nil
}

// Inner returns the dot product Σ x[i]·y[i].
func Inner(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, interpErrorf("Inner", ErrDimensionMismatch)
	}

	return floats.Dot(x, y), nil
}
