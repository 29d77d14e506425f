// SPDX-License-Identifier: MIT
// Package limits: sentinel error set.
// Callers match these with errors.Is; constructors return them unwrapped.

package limits

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a dimension length is < 1.
	ErrInvalidLength = errors.New("limits: dimension length must be >= 1")

	// ErrInvalidPolicy indicates an unknown Policy tag.
	ErrInvalidPolicy = errors.New("limits: unknown boundary policy")

	// ErrOutOfRangeCoordinate signals a coordinate the policy refuses to
	// extrapolate: NaN under every policy, ±Inf under Periodic, and anything
	// outside [0, len-1] under Strict.
	ErrOutOfRangeCoordinate = errors.New("limits: coordinate out of range")
)

// limitsErrorf tags err with the calling operation.
func limitsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
