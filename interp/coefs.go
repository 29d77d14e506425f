// SPDX-License-Identifier: MIT

package interp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvinterp/kernel"
	"github.com/katalvlaran/lvinterp/limits"
)

// Coefs computes the neighbour set of coordinate x: the S source indices a
// kernel of support S touches and their weights.
//
// Implementation:
//   - Stage 1: x' = b.Reduce(x, S) (policy pre-mapping, may reject x).
//   - Stage 2: base j0 = floor(x') for even S, floor(x'+1/2) for odd S;
//     t = x' - j0; k.Weights(t, w).
//   - Stage 3: neighbour o is j0-(S-1)/2+o, resolved through b; an invalid
//     neighbour gets weight 0 and a clamped (safe) index.
//
// idx and w must both have length S.
//
// Errors:
//   - ErrNilArgument for a nil kernel or boundary.
//   - ErrInvalidSupport if S < 1 or the slices do not have length S.
//   - ErrOutOfRangeCoordinate when the boundary refuses x.
//
// Complexity: O(S), no allocation.
func Coefs(k kernel.Kernel, b limits.Boundary, x float64, idx []int, w []float64) error {
	if k == nil || b == nil {
		return interpErrorf("Coefs", ErrNilArgument)
	}
	s := k.Support()
	if s < 1 || len(idx) != s || len(w) != s {
		return interpErrorf("Coefs", ErrInvalidSupport)
	}

	return coefs(k, s, b, x, idx, w)
}

// coefs is Coefs without argument validation, for the hot loops.
func coefs(k kernel.Kernel, s int, b limits.Boundary, x float64, idx []int, w []float64) error {
	r, err := b.Reduce(x, s)
	if err != nil {
		return fmt.Errorf("Coefs(x=%g): %w", x, err)
	}
	var f float64
	if s%2 == 0 {
		f = math.Floor(r)
	} else {
		f = math.Floor(r + 0.5)
	}
	k.Weights(r-f, w)
	first := int(f) - (s-1)/2
	for o := 0; o < s; o++ {
		j, ok := b.Resolve(first + o)
		idx[o] = j
		if !ok {
			w[o] = 0
		}
	}

	return nil
}

// LimitsFor returns the limits of a dimension of length n using the
// boundary hint of k.
func LimitsFor(k kernel.Kernel, n int) (limits.Limits, error) {
	if k == nil {
		return limits.Limits{}, interpErrorf("LimitsFor", ErrNilArgument)
	}

	return limits.New(n, k.Boundary())
}
