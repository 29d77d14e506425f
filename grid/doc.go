// SPDX-License-Identifier: MIT

// Package grid provides the dense N-dimensional float64 arrays that the
// interpolation operators read from and write into.
//
// What & Why:
//
//	Operators in package interp work on flat []float64 buffers plus a
//	declared shape. Array bundles both, validates shapes once, and offers
//	bounds-checked multi-index access for callers that prefer it over raw
//	offsets.
//
// Layout:
//
//	Row-major: the last axis varies fastest. For shape (n0, n1, n2) the
//	element (i, j, k) lives at offset (i*n1 + j)*n2 + k.
//
// Complexity:
//
//	Shape/Len/Data run in O(1); At/Set in O(rank); Clone in O(len).
package grid
