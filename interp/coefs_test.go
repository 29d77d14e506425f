// SPDX-License-Identifier: MIT
// Package interp_test contains unit tests for the neighbour-set computation.
package interp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvinterp/interp"
	"github.com/katalvlaran/lvinterp/kernel"
	"github.com/katalvlaran/lvinterp/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coefsOf is a small wrapper returning fresh slices.
func coefsOf(t *testing.T, k kernel.Kernel, b limits.Boundary, x float64) ([]int, []float64) {
	t.Helper()
	idx, w := make([]int, k.Support()), make([]float64, k.Support())
	require.NoError(t, interp.Coefs(k, b, x, idx, w))

	return idx, w
}

// TestCoefsTriangleInterior checks the textbook linear weights.
func TestCoefsTriangleInterior(t *testing.T) {
	idx, w := coefsOf(t, kernel.Triangle(), limits.MustNew(10, limits.Flat), 8.5)
	assert.Equal(t, []int{8, 9}, idx)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, w, tol)

	idx, w = coefsOf(t, kernel.Triangle(), limits.MustNew(10, limits.Flat), 2.25)
	assert.Equal(t, []int{2, 3}, idx)
	assert.InDeltaSlice(t, []float64{0.75, 0.25}, w, tol)
}

// TestCoefsFlatFarOutside: far-left coordinates collapse onto sample 0.
func TestCoefsFlatFarOutside(t *testing.T) {
	k := kernel.Triangle()
	b := limits.MustNew(10, limits.Flat)

	idx, w := coefsOf(t, k, b, -5)
	for o := range idx {
		assert.Equal(t, 0, idx[o])
	}
	assert.InDelta(t, 1.0, w[0]+w[1], tol)

	idx, w = coefsOf(t, k, b, math.Inf(1))
	for o := range idx {
		assert.Equal(t, 9, idx[o])
	}
	assert.InDelta(t, 1.0, w[0]+w[1], tol)
}

// TestCoefsSafeFlatZeroesOutside: out-of-range neighbours weigh nothing.
func TestCoefsSafeFlatZeroesOutside(t *testing.T) {
	k := kernel.Triangle()
	b := limits.MustNew(10, limits.SafeFlat)

	idx, w := coefsOf(t, k, b, -5)
	assert.Equal(t, []int{0, 0}, idx)
	assert.Equal(t, []float64{0, 0}, w)

	// Between -1 and 0 only the right neighbour (index 0) survives.
	idx, w = coefsOf(t, k, b, -0.25)
	assert.Equal(t, []int{0, 0}, idx)
	assert.InDeltaSlice(t, []float64{0, 0.75}, w, tol)
}

// TestCoefsEdgeTieBreak pins that x exactly on an edge reproduces the edge
// sample under every policy.
func TestCoefsEdgeTieBreak(t *testing.T) {
	src := ramp(10)
	for _, p := range allPolicies {
		b := limits.MustNew(10, p)
		for _, x := range []float64{0, 9} {
			idx, w := coefsOf(t, kernel.Triangle(), b, x)
			var v float64
			for o := range idx {
				v += w[o] * src[idx[o]]
			}
			assert.InDelta(t, x, v, tol, "%v at %g", p, x)
		}
	}
}

// TestCoefsPeriodicWraps checks the wrap of both the coordinate and the
// neighbour indices.
func TestCoefsPeriodicWraps(t *testing.T) {
	b := limits.MustNew(4, limits.Periodic)

	idx, w := coefsOf(t, kernel.Triangle(), b, 3.5)
	assert.Equal(t, []int{3, 0}, idx)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, w, tol)

	idx2, w2 := coefsOf(t, kernel.Triangle(), b, -0.5)
	assert.Equal(t, idx, idx2)
	assert.InDeltaSlice(t, w, w2, tol)

	idx, _ = coefsOf(t, kernel.CubicBSpline(), b, 0.5)
	assert.Equal(t, []int{3, 0, 1, 2}, idx)
}

// TestCoefsStrict rejects coordinates outside [0, len-1] and zeroes
// out-of-range neighbours of accepted ones.
func TestCoefsStrict(t *testing.T) {
	k := kernel.CubicBSpline()
	b := limits.MustNew(10, limits.Strict)
	idx, w := make([]int, 4), make([]float64, 4)

	for _, x := range []float64{-0.1, 9.5, math.Inf(-1), math.NaN()} {
		require.ErrorIs(t, interp.Coefs(k, b, x, idx, w), limits.ErrOutOfRangeCoordinate, "x=%g", x)
	}

	idx, w = coefsOf(t, k, b, 0)
	assert.Equal(t, []int{0, 0, 1, 2}, idx)
	assert.Equal(t, 0.0, w[0])
	assert.InDelta(t, 2.0/3, w[1], tol)
}

// TestCoefsNaNRejected: NaN has no meaningful neighbour under any policy.
func TestCoefsNaNRejected(t *testing.T) {
	idx, w := make([]int, 2), make([]float64, 2)
	for _, p := range allPolicies {
		err := interp.Coefs(kernel.Triangle(), limits.MustNew(5, p), math.NaN(), idx, w)
		require.ErrorIs(t, err, interp.ErrOutOfRangeCoordinate, "%v", p)
	}
}

// TestCoefsArguments checks argument validation.
func TestCoefsArguments(t *testing.T) {
	b := limits.MustNew(5, limits.Flat)

	require.ErrorIs(t, interp.Coefs(nil, b, 1, nil, nil), interp.ErrNilArgument)
	require.ErrorIs(t, interp.Coefs(kernel.Triangle(), nil, 1, nil, nil), interp.ErrNilArgument)
	require.ErrorIs(t, interp.Coefs(kernel.Triangle(), b, 1, make([]int, 3), make([]float64, 2)), interp.ErrInvalidSupport)
	require.ErrorIs(t, interp.Coefs(zeroKernel{}, b, 1, nil, nil), interp.ErrInvalidSupport)
}

// TestCoefsPartitionOfUnity: interior weights of every catalog kernel sum
// to one.
func TestCoefsPartitionOfUnity(t *testing.T) {
	r := newRand()
	b := limits.MustNew(20, limits.Flat)
	for _, k := range catalog(t) {
		for _, x := range randCoords(r, 50, 3, 16) {
			_, w := coefsOf(t, k, b, x)
			var sum float64
			for _, v := range w {
				sum += v
			}
			assert.InDelta(t, 1.0, sum, 1e-12, "%v at %g", k, x)
		}
	}
}

// TestCoefsInterpolatingAtIntegers: interpolating kernels reproduce the
// samples at integer coordinates.
func TestCoefsInterpolatingAtIntegers(t *testing.T) {
	lz, err := kernel.Lanczos(4)
	require.NoError(t, err)
	src := []float64{3, -1, 4, 1, -5, 9, 2, -6}
	b := limits.MustNew(len(src), limits.Flat)

	for _, k := range []kernel.Kernel{kernel.Box(), kernel.Triangle(), kernel.CatmullRom(), lz} {
		for i := range src {
			idx, w := coefsOf(t, k, b, float64(i))
			var v float64
			for o := range idx {
				v += w[o] * src[idx[o]]
			}
			assert.InDelta(t, src[i], v, 1e-12, "%v at %d", k, i)
		}
	}
}

// TestLimitsFor follows the kernel boundary hint.
func TestLimitsFor(t *testing.T) {
	l, err := interp.LimitsFor(kernel.Triangle(kernel.WithBoundary(limits.Periodic)), 6)
	require.NoError(t, err)
	assert.Equal(t, limits.Periodic, l.Policy())
	assert.Equal(t, 6, l.Len())

	_, err = interp.LimitsFor(kernel.Triangle(), 0)
	require.ErrorIs(t, err, interp.ErrInvalidLength)

	_, err = interp.LimitsFor(nil, 3)
	require.ErrorIs(t, err, interp.ErrNilArgument)
}
