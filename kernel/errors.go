// SPDX-License-Identifier: MIT

package kernel

import "errors"

var (
	// ErrInvalidSupport is returned for a non-positive support width or one
	// that does not fit the kernel family (e.g. odd Lanczos).
	ErrInvalidSupport = errors.New("kernel: invalid support width")

	// ErrNilShape indicates New was called without a shape function.
	ErrNilShape = errors.New("kernel: nil shape function")
)
