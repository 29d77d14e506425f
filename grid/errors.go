// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every message is prefixed with "grid: ..." so it is easy to grep; wrap with
// fmt.Errorf("ctx: %w", ErrX) at call sites and match with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when a shape is empty or has a
	// non-positive extent.
	ErrInvalidShape = errors.New("grid: invalid shape")

	// ErrDimensionMismatch indicates incompatible shapes or buffer lengths.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrOutOfRange indicates that a multi-index is outside the array.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNilArray indicates that a nil *Array was passed.
	ErrNilArray = errors.New("grid: nil array")

	// ErrNaNInf signals a NaN or ±Inf tolerance.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")
)

// gridErrorf wraps err with a method tag.
func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
