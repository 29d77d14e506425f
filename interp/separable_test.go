// SPDX-License-Identifier: MIT
package interp_test

import (
	"testing"

	"github.com/katalvlaran/lvinterp/interp"
	"github.com/katalvlaran/lvinterp/kernel"
	"github.com/katalvlaran/lvinterp/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeparableBilinearPoint: the centre of four samples is their mean.
func TestSeparableBilinearPoint(t *testing.T) {
	src := ramp(16) // src[i,j] = 4i + j
	op, err := interp.NewSeparable([]int{4, 4},
		[]interp.Coordinates{interp.Points{1.5}, interp.Points{2.5}},
		[]kernel.Kernel{kernel.Triangle()})
	require.NoError(t, err)

	assert.Equal(t, 2, op.Rank())
	assert.Equal(t, []int{4, 4}, op.InputSize())
	assert.Equal(t, []int{1, 1}, op.OutputSize())

	out, err := op.Apply(interp.Direct, src)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{(6 + 7 + 10 + 11) / 4.0}, out, tol)

	grid2, err := interp.NewSeparable([]int{4, 4},
		[]interp.Coordinates{interp.Points{1.5, 2.5}, interp.Points{1.5, 2.5}},
		[]kernel.Kernel{kernel.Triangle()})
	require.NoError(t, err)
	out, err = grid2.Apply(interp.Direct, src)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{7.5, 8.5, 11.5, 12.5}, out, tol)
}

// TestSeparableIdentity: integer coordinates reproduce the source.
func TestSeparableIdentity(t *testing.T) {
	src := randVec(newRand(), 3*5*2)
	op, err := interp.NewSeparable([]int{3, 5, 2},
		[]interp.Coordinates{interp.Uniform(3, 0, 1), interp.Uniform(5, 0, 1), interp.Points{0, 1}},
		[]kernel.Kernel{kernel.Triangle(), kernel.CatmullRom(), kernel.Box()})
	require.NoError(t, err)

	out, err := op.Apply(interp.Direct, src)
	require.NoError(t, err)
	assert.InDeltaSlice(t, src, out, tol)
}

// TestSeparableMatchesAxisComposition compares against applying the axis
// operators by hand.
func TestSeparableMatchesAxisComposition(t *testing.T) {
	r := newRand()
	const n0, n1 = 6, 7
	xs0 := interp.Points(randCoords(r, 4, -1, n0))
	xs1 := interp.Points(randCoords(r, 3, -1, n1))
	op, err := interp.NewSeparable([]int{n0, n1},
		[]interp.Coordinates{xs0, xs1},
		[]kernel.Kernel{kernel.CatmullRom(), kernel.QuadraticBSpline()})
	require.NoError(t, err)

	a0 := mustSparse(t, kernel.CatmullRom(), limits.MustNew(n0, limits.Flat), xs0)
	a1 := mustSparse(t, kernel.QuadraticBSpline(), limits.MustNew(n1, limits.Flat), xs1)
	assert.Equal(t, a0.OutputSize(), op.Axis(0).OutputSize())

	src := randVec(r, n0*n1)
	// axis 1 first (rows), then axis 0 (columns): the map is linear in each.
	tmp := make([]float64, n0*3)
	for i := 0; i < n0; i++ {
		require.NoError(t, a1.ApplyTo(tmp[i*3:(i+1)*3], interp.Direct, src[i*n1:(i+1)*n1]))
	}
	want := make([]float64, 4*3)
	col, res := make([]float64, n0), make([]float64, 4)
	for j := 0; j < 3; j++ {
		for i := 0; i < n0; i++ {
			col[i] = tmp[i*3+j]
		}
		require.NoError(t, a0.ApplyTo(res, interp.Direct, col))
		for i := 0; i < 4; i++ {
			want[i*3+j] = res[i]
		}
	}

	got, err := op.Apply(interp.Direct, src)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got, 1e-12)
}

// TestSeparableScaledAndWorkers covers α/β, tabulation and workers.
func TestSeparableScaledAndWorkers(t *testing.T) {
	r := newRand()
	shape := []int{5, 4, 3}
	coords := []interp.Coordinates{
		interp.Points(randCoords(r, 6, 0, 4)),
		interp.Points(randCoords(r, 2, 0, 3)),
		interp.Points(randCoords(r, 5, 0, 2)),
	}
	kers := []kernel.Kernel{kernel.CubicBSpline()}
	base, err := interp.NewSeparable(shape, coords, kers)
	require.NoError(t, err)
	tab, err := interp.NewSeparable(shape, coords, kers, interp.WithTabulation(), interp.WithWorkers(3))
	require.NoError(t, err)
	_, ok := tab.Axis(1).(*interp.Tabulated)
	assert.True(t, ok)

	src := randVec(r, 60)
	dst0 := randVec(r, 60)
	d1 := append([]float64(nil), dst0[:6*2*5]...)
	d2 := append([]float64(nil), d1...)
	require.NoError(t, base.ApplyScaled(0.5, interp.Direct, src, -2, d1))
	require.NoError(t, tab.ApplyScaled(0.5, interp.Direct, src, -2, d2))
	assert.InDeltaSlice(t, d1, d2, 1e-12)

	y := randVec(r, 6*2*5)
	a1 := append([]float64(nil), dst0...)
	a2 := append([]float64(nil), dst0...)
	require.NoError(t, base.ApplyScaled(3, interp.Adjoint, y, 1, a1))
	require.NoError(t, tab.ApplyScaled(3, interp.Adjoint, y, 1, a2))
	assert.InDeltaSlice(t, a1, a2, 1e-12)
}

// TestSeparableBoundaries: explicit limits override the kernel hints.
func TestSeparableBoundaries(t *testing.T) {
	coords := []interp.Coordinates{interp.Points{-1}, interp.Points{0}}
	kers := []kernel.Kernel{kernel.Triangle()}
	src := []float64{1, 2, 3, 4} // 2×2

	flat, err := interp.NewSeparable([]int{2, 2}, coords, kers)
	require.NoError(t, err)
	out, err := flat.Apply(interp.Direct, src)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1}, out, tol)

	safe, err := interp.NewSeparable([]int{2, 2}, coords, kers,
		interp.WithBoundaries(limits.MustNew(2, limits.SafeFlat), limits.MustNew(2, limits.Flat)))
	require.NoError(t, err)
	out, err = safe.Apply(interp.Direct, src)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0}, out, tol)

	per, err := interp.NewSeparable([]int{2, 2}, coords,
		[]kernel.Kernel{kernel.Triangle(kernel.WithBoundary(limits.Periodic))})
	require.NoError(t, err)
	out, err = per.Apply(interp.Direct, src)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3}, out, tol)
}

// TestSeparableStrictIsAtomic: a refused coordinate on any axis leaves dst
// untouched.
func TestSeparableStrictIsAtomic(t *testing.T) {
	op, err := interp.NewSeparable([]int{3, 3},
		[]interp.Coordinates{interp.Points{1}, interp.Points{0.5, 2.5}},
		[]kernel.Kernel{kernel.Triangle(kernel.WithBoundary(limits.Strict))})
	require.NoError(t, err)

	dst := filled(2, 9)
	err = op.ApplyTo(dst, interp.Direct, ramp(9))
	require.ErrorIs(t, err, interp.ErrOutOfRangeCoordinate)
	assert.Equal(t, filled(2, 9), dst)
}

// TestSeparableConstructorErrors checks argument validation.
func TestSeparableConstructorErrors(t *testing.T) {
	c := []interp.Coordinates{interp.Points{1}, interp.Points{1}}
	k := []kernel.Kernel{kernel.Triangle()}

	_, err := interp.NewSeparable([]int{3, 0}, c, k)
	require.ErrorIs(t, err, interp.ErrInvalidLength)
	_, err = interp.NewSeparable(nil, nil, k)
	require.ErrorIs(t, err, interp.ErrInvalidLength)
	_, err = interp.NewSeparable([]int{3, 3}, c, nil)
	require.ErrorIs(t, err, interp.ErrNilArgument)
	_, err = interp.NewSeparable([]int{3, 3}, c[:1], k)
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)
	_, err = interp.NewSeparable([]int{3, 3}, c, []kernel.Kernel{kernel.Box(), kernel.Box(), kernel.Box()})
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)
	_, err = interp.NewSeparable([]int{3, 3}, []interp.Coordinates{interp.Points{1}, nil}, k)
	require.ErrorIs(t, err, interp.ErrNilArgument)
	_, err = interp.NewSeparable([]int{3, 3}, []interp.Coordinates{interp.Points{1}, interp.Points{}}, k)
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)
	_, err = interp.NewSeparable([]int{3, 3}, c, k, interp.WithBoundaries(limits.MustNew(3, limits.Flat)))
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)
	_, err = interp.NewSeparable([]int{3, 3}, c, k,
		interp.WithBoundaries(limits.MustNew(3, limits.Flat), limits.MustNew(4, limits.Flat)))
	require.ErrorIs(t, err, interp.ErrDimensionMismatch)
	_, err = interp.NewSeparable([]int{3, 3}, c, []kernel.Kernel{zeroKernel{}})
	require.ErrorIs(t, err, interp.ErrInvalidSupport)
}
