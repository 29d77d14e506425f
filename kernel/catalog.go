// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"
)

// Box is the nearest-neighbour kernel (S=1).
func Box(opts ...Option) *Func {
	return mustNew("Box", 1, box, opts...)
}

// Triangle is the linear interpolation kernel (S=2).
func Triangle(opts ...Option) *Func {
	return mustNew("Triangle", 2, triangle, opts...)
}

// QuadraticBSpline is the quadratic B-spline (S=3).
func QuadraticBSpline(opts ...Option) *Func {
	return mustNew("QuadraticBSpline", 3, quadraticBSpline, opts...)
}

// CubicBSpline is the cubic B-spline (S=4). It smooths: at integer
// coordinates it returns 1/6, 2/3, 1/6 rather than the sample itself.
func CubicBSpline(opts ...Option) *Func {
	return mustNew("CubicBSpline", 4, cubicBSpline, opts...)
}

// CatmullRom is the Keys cubic with a = -1/2 (S=4).
func CatmullRom(opts ...Option) *Func {
	return mustNew("CatmullRom", 4, keys(-0.5), opts...)
}

// Keys returns the Keys cubic convolution kernel with parameter a (S=4).
// a = -1/2 gives Catmull-Rom; a = -3/4 is the common image-processing choice.
func Keys(a float64, opts ...Option) *Func {
	return mustNew(fmt.Sprintf("Keys[%g]", a), 4, keys(a), opts...)
}

// Lanczos returns the Lanczos windowed sinc with the given even support.
// Weights are always normalized, since the raw window is not a partition
// of unity.
func Lanczos(support int, opts ...Option) (*Func, error) {
	if support < 2 || support%2 != 0 {
		return nil, fmt.Errorf("Lanczos(%d): %w", support, ErrInvalidSupport)
	}
	half := float64(support) / 2
	phi := func(u float64) float64 {
		if math.Abs(u) >= half {
			return 0
		}

		return sinc(u) * sinc(u/half)
	}
	opts = append(opts, WithNormalization())

	return New(fmt.Sprintf("Lanczos%d", support), support, phi, opts...)
}

func box(u float64) float64 {
	if u >= -0.5 && u < 0.5 {
		return 1
	}

	return 0
}

func triangle(u float64) float64 {
	u = math.Abs(u)
	if u < 1 {
		return 1 - u
	}

	return 0
}

func quadraticBSpline(u float64) float64 {
	u = math.Abs(u)
	switch {
	case u <= 0.5:
		return 0.75 - u*u
	case u < 1.5:
		d := u - 1.5

		return 0.5 * d * d
	default:
		return 0
	}
}

func cubicBSpline(u float64) float64 {
	u = math.Abs(u)
	switch {
	case u < 1:
		return 2.0/3.0 - u*u + 0.5*u*u*u
	case u < 2:
		d := 2 - u

		return d * d * d / 6
	default:
		return 0
	}
}

func keys(a float64) func(float64) float64 {
	return func(u float64) float64 {
		u = math.Abs(u)
		switch {
		case u <= 1:
			return ((a+2)*u-(a+3))*u*u + 1
		case u < 2:
			return ((a*u-5*a)*u+8*a)*u - 4*a
		default:
			return 0
		}
	}
}

func sinc(u float64) float64 {
	if u == 0 {
		return 1
	}
	pu := math.Pi * u

	return math.Sin(pu) / pu
}
