// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Single source of truth for shape checks used by Array and by the
//    interpolation operators.
//  - Return tagged sentinels so callers can match with errors.Is.

package grid

import "math"

// ValidateShape ensures shape is non-empty and every extent is >= 1.
// Complexity: O(rank).
func ValidateShape(shape []int) error {
	if len(shape) == 0 {
		return gridErrorf("ValidateShape: rank", ErrInvalidShape)
	}
	for _, n := range shape {
		if n < 1 {
			return gridErrorf("ValidateShape: extent", ErrInvalidShape)
		}
	}

	return nil
}

// Volume returns the number of elements of a valid shape.
// Errors: ErrInvalidShape for invalid shapes or when the product overflows int.
func Volume(shape []int) (int, error) {
	if err := ValidateShape(shape); err != nil {
		return 0, err
	}
	v := 1
	for _, n := range shape {
		if v > math.MaxInt/n {
			return 0, gridErrorf("Volume: overflow", ErrInvalidShape)
		}
		v *= n
	}

	return v, nil
}

// SameShape reports whether two shapes are identical.
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ValidateSameShape ensures a and b are non-nil and have identical shapes.
func ValidateSameShape(a, b *Array) error {
	if a == nil || b == nil {
		return gridErrorf("ValidateSameShape", ErrNilArray)
	}
	if !SameShape(a.shape, b.shape) {
		return gridErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}
