// SPDX-License-Identifier: MIT

// Package affine implements 2-D affine coordinate transforms used to drive
// non-separable interpolation.
//
// A Transform maps a destination pixel (i, j) to a fractional source
// coordinate (x, y):
//
//	x = Xx*i + Xy*j + X0
//	y = Yx*i + Yy*j + Y0
//
// Transforms are plain values, immutable and safe to share.
package affine

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSingular is returned by Inverse when the linear part is not invertible.
	ErrSingular = errors.New("affine: singular transform")

	// ErrNaNInf signals a non-finite coefficient.
	ErrNaNInf = errors.New("affine: NaN or Inf coefficient")
)

// Transform is a 2-D affine map.
type Transform struct {
	Xx, Xy, X0 float64
	Yx, Yy, Y0 float64
}

// New validates the coefficients and returns the transform.
func New(xx, xy, x0, yx, yy, y0 float64) (Transform, error) {
	t := Transform{Xx: xx, Xy: xy, X0: x0, Yx: yx, Yy: yy, Y0: y0}
	for _, v := range [...]float64{xx, xy, x0, yx, yy, y0} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Transform{}, fmt.Errorf("New: %w", ErrNaNInf)
		}
	}

	return t, nil
}

// Identity returns the identity transform.
func Identity() Transform { return Transform{Xx: 1, Yy: 1} }

// Translation returns (i, j) -> (i+dx, j+dy).
func Translation(dx, dy float64) Transform {
	return Transform{Xx: 1, X0: dx, Yy: 1, Y0: dy}
}

// Scaling returns (i, j) -> (sx*i, sy*j).
func Scaling(sx, sy float64) Transform { return Transform{Xx: sx, Yy: sy} }

// Rotation returns a rotation by theta radians about the origin.
func Rotation(theta float64) Transform {
	s, c := math.Sincos(theta)

	return Transform{Xx: c, Xy: -s, Yx: s, Yy: c}
}

// Apply maps (i, j) to (x, y).
func (t Transform) Apply(i, j float64) (x, y float64) {
	return t.Xx*i + t.Xy*j + t.X0, t.Yx*i + t.Yy*j + t.Y0
}

// Compose returns t∘u: u is applied first, then t.
func (t Transform) Compose(u Transform) Transform {
	return Transform{
		Xx: t.Xx*u.Xx + t.Xy*u.Yx,
		Xy: t.Xx*u.Xy + t.Xy*u.Yy,
		X0: t.Xx*u.X0 + t.Xy*u.Y0 + t.X0,
		Yx: t.Yx*u.Xx + t.Yy*u.Yx,
		Yy: t.Yx*u.Xy + t.Yy*u.Yy,
		Y0: t.Yx*u.X0 + t.Yy*u.Y0 + t.Y0,
	}
}

// Translate returns the transform followed by a translation.
func (t Transform) Translate(dx, dy float64) Transform {
	return Translation(dx, dy).Compose(t)
}

// Scale returns the transform followed by a scaling.
func (t Transform) Scale(sx, sy float64) Transform {
	return Scaling(sx, sy).Compose(t)
}

// Rotate returns the transform followed by a rotation.
func (t Transform) Rotate(theta float64) Transform {
	return Rotation(theta).Compose(t)
}

// Det returns the determinant of the linear part.
func (t Transform) Det() float64 { return t.Xx*t.Yy - t.Xy*t.Yx }

// Matrix returns the 3×3 homogeneous matrix of t.
func (t Transform) Matrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		t.Xx, t.Xy, t.X0,
		t.Yx, t.Yy, t.Y0,
		0, 0, 1,
	})
}

// Inverse returns the transform mapping (x, y) back to (i, j).
// Errors: ErrSingular when the determinant is zero or not finite.
func (t Transform) Inverse() (Transform, error) {
	d := t.Det()
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return Transform{}, fmt.Errorf("Inverse: %w", ErrSingular)
	}
	var inv mat.Dense
	if err := inv.Inverse(t.Matrix()); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return Transform{}, fmt.Errorf("Inverse: %w", ErrSingular)
		}
	}

	return Transform{
		Xx: inv.At(0, 0), Xy: inv.At(0, 1), X0: inv.At(0, 2),
		Yx: inv.At(1, 0), Yy: inv.At(1, 1), Y0: inv.At(1, 2),
	}, nil
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	return fmt.Sprintf("[%g %g %g; %g %g %g]", t.Xx, t.Xy, t.X0, t.Yx, t.Yy, t.Y0)
}
