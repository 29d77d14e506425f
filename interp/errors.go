// SPDX-License-Identifier: MIT
// Package interp: sentinel error set.
//
// ERROR PRIORITY (checked in this order, before any write to dst):
// nil arguments -> mode -> buffer lengths -> coordinate validation.
// An apply either completes or returns one of these without touching dst.

package interp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvinterp/kernel"
	"github.com/katalvlaran/lvinterp/limits"
)

var (
	// ErrDimensionMismatch indicates that a source or destination buffer,
	// a coordinate set or a boundary list disagrees with the operator shape.
	ErrDimensionMismatch = errors.New("interp: dimension mismatch")

	// ErrInvalidMode indicates a Mode other than Direct or Adjoint.
	ErrInvalidMode = errors.New("interp: invalid mode")

	// ErrNilArgument indicates a nil kernel, boundary, coordinate set or mapping.
	ErrNilArgument = errors.New("interp: nil argument")
)

// Aliases of the collaborator sentinels, so callers of this package can
// match every failure kind with interp.ErrX.
var (
	ErrInvalidLength        = limits.ErrInvalidLength
	ErrInvalidSupport       = kernel.ErrInvalidSupport
	ErrOutOfRangeCoordinate = limits.ErrOutOfRangeCoordinate
)

// interpErrorf wraps err with an operation tag.
func interpErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
