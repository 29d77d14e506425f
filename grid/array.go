// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"strings"
)

// Array is a dense row-major N-dimensional array of float64 values.
type Array struct {
	shape   []int     // extents, all >= 1
	strides []int     // row-major strides, strides[rank-1] == 1
	data    []float64 // flat backing storage, len == product(shape)
}

// New creates a zero-filled array of the given shape.
// Stage 1 (Validate): shape non-empty, extents >= 1.
// Stage 2 (Prepare): allocate the flat backing slice.
// Complexity: O(len) time and memory.
func New(shape ...int) (*Array, error) {
	n, err := Volume(shape)
	if err != nil {
		return nil, gridErrorf("New", err)
	}

	return wrap(make([]float64, n), shape), nil
}

// FromSlice wraps data (no copy) with the given shape.
// Errors: ErrInvalidShape, or ErrDimensionMismatch when len(data) differs
// from the shape volume.
func FromSlice(data []float64, shape ...int) (*Array, error) {
	n, err := Volume(shape)
	if err != nil {
		return nil, gridErrorf("FromSlice", err)
	}
	if len(data) != n {
		return nil, gridErrorf("FromSlice", ErrDimensionMismatch)
	}

	return wrap(data, shape), nil
}

// Like returns a zero-filled array with the same shape as a.
func Like(a *Array) (*Array, error) {
	if a == nil {
		return nil, gridErrorf("Like", ErrNilArray)
	}

	return New(a.shape...)
}

func wrap(data []float64, shape []int) *Array {
	sh := append([]int(nil), shape...)
	st := make([]int, len(sh))
	s := 1
	for k := len(sh) - 1; k >= 0; k-- {
		st[k] = s
		s *= sh[k]
	}

	return &Array{shape: sh, strides: st, data: data}
}

// Shape returns a copy of the extents.
func (a *Array) Shape() []int { return append([]int(nil), a.shape...) }

// Rank returns the number of axes.
func (a *Array) Rank() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *Array) Len() int { return len(a.data) }

// Data returns the backing slice. Writes through it are visible in a.
func (a *Array) Data() []float64 { return a.data }

// offset computes the flat offset of a multi-index.
func (a *Array) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrDimensionMismatch
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, ErrOutOfRange
		}
		off += i * a.strides[k]
	}

	return off, nil
}

// At returns the element at the multi-index idx.
// Errors: ErrOutOfRange, or ErrDimensionMismatch for a wrong index rank.
func (a *Array) At(idx ...int) (float64, error) {
	off, err := a.offset(idx)
	if err != nil {
		return 0, fmt.Errorf("Array.At%v: %w", idx, err)
	}

	return a.data[off], nil
}

// Set assigns v at the multi-index idx.
func (a *Array) Set(v float64, idx ...int) error {
	off, err := a.offset(idx)
	if err != nil {
		return fmt.Errorf("Array.Set%v: %w", idx, err)
	}
	a.data[off] = v

	return nil
}

// Fill assigns v to every element.
func (a *Array) Fill(v float64) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns a deep copy.
// Complexity: O(len).
func (a *Array) Clone() *Array {
	c := wrap(make([]float64, len(a.data)), a.shape)
	copy(c.data, a.data)

	return c
}

// Reshape returns a view with a new shape sharing the same storage.
// Errors: ErrDimensionMismatch if the volumes differ.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	n, err := Volume(shape)
	if err != nil {
		return nil, gridErrorf("Reshape", err)
	}
	if n != len(a.data) {
		return nil, gridErrorf("Reshape", ErrDimensionMismatch)
	}

	return wrap(a.data, shape), nil
}

// String implements fmt.Stringer. Rank-1 and rank-2 arrays print their
// values; higher ranks print the shape only.
func (a *Array) String() string {
	var b strings.Builder
	switch len(a.shape) {
	case 1:
		writeRow(&b, a.data)
	case 2:
		cols := a.shape[1]
		for i := 0; i < a.shape[0]; i++ {
			writeRow(&b, a.data[i*cols:(i+1)*cols])
			b.WriteByte('\n')
		}
	default:
		fmt.Fprintf(&b, "Array%v", a.shape)
	}

	return b.String()
}

func writeRow(b *strings.Builder, row []float64) {
	b.WriteByte('[')
	for j, v := range row {
		if j > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%g", v)
	}
	b.WriteByte(']')
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Negative tolerances are taken by absolute value.
// Errors: ErrNilArray, ErrDimensionMismatch, ErrNaNInf for a non-finite tolerance.
// Complexity: O(len), early exit on the first violation.
func AllClose(a, b *Array, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, gridErrorf("AllClose", ErrNaNInf)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, gridErrorf("AllClose", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	for i, av := range a.data {
		bv := b.data[i]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
