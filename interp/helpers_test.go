// SPDX-License-Identifier: MIT
package interp_test

import (
	"math/rand/v2"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/lvinterp/kernel"
	"github.com/katalvlaran/lvinterp/limits"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

var allPolicies = []limits.Policy{limits.Flat, limits.SafeFlat, limits.Periodic, limits.Strict}

// catalog returns one kernel of every catalog shape.
func catalog(t testing.TB) []*kernel.Func {
	lz, err := kernel.Lanczos(4)
	require.NoError(t, err)

	return []*kernel.Func{
		kernel.Box(),
		kernel.Triangle(),
		kernel.QuadraticBSpline(),
		kernel.CubicBSpline(),
		kernel.CatmullRom(),
		lz,
	}
}

// ramp returns [0, 1, …, n-1].
func ramp(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i)
	}

	return v
}

// filled returns n copies of x.
func filled(n int, x float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = x
	}

	return v
}

func newRand() *rand.Rand { return rand.New(rand.NewPCG(7, 11)) }

// randVec returns n values uniform in [-1, 1).
func randVec(r *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 2*r.Float64() - 1
	}

	return v
}

// randCoords returns m coordinates uniform in [lo, hi).
func randCoords(r *rand.Rand, m int, lo, hi float64) []float64 {
	v := make([]float64, m)
	for i := range v {
		v[i] = lo + (hi-lo)*r.Float64()
	}

	return v
}

// coordRange is the coordinate band a policy accepts in the tests.
func coordRange(p limits.Policy, n int) (lo, hi float64) {
	if p == limits.Strict {
		return 0, float64(n - 1)
	}

	return -3, float64(n + 2)
}

// zeroKernel advertises an impossible support.
type zeroKernel struct{}

func (zeroKernel) Support() int { return 0 }
func (zeroKernel) Weights(float64, []float64) {}
func (zeroKernel) Boundary() limits.Policy { return limits.Flat }

// countingKernel is a Triangle that records how often Weights runs.
type countingKernel struct {
	*kernel.Func
	calls *atomic.Int64
}

func newCountingKernel() countingKernel {
	return countingKernel{Func: kernel.Triangle(), calls: new(atomic.Int64)}
}

func (k countingKernel) Weights(t float64, w []float64) {
	k.calls.Add(1)
	k.Func.Weights(t, w)
}
