// SPDX-License-Identifier: MIT

package limits

import (
	"math"
	"strconv"
)

// Boundary is the contract a boundary-extension policy must satisfy to be
// used by the interpolation operators.
//
// Implementations must be immutable and safe for concurrent use.
type Boundary interface {
	// Len returns the number of samples along the dimension (>= 1).
	Len() int

	// Reduce maps a raw coordinate to the coordinate actually used for the
	// neighbour search of a kernel with the given support. It returns
	// ErrOutOfRangeCoordinate when the policy refuses the coordinate.
	Reduce(x float64, support int) (float64, error)

	// Resolve maps a possibly out-of-range sample index to an index in
	// [0, Len()-1]. valid=false means the neighbour must contribute a zero
	// weight; the returned index is still safe to dereference.
	Resolve(i int) (index int, valid bool)
}

// Limits is the built-in Boundary: a dimension length plus a Policy tag.
type Limits struct {
	n      int
	policy Policy
}

var _ Boundary = Limits{}

// New returns Limits for a dimension of the given length.
//
// Errors:
//   - ErrInvalidLength if length < 1.
//   - ErrInvalidPolicy if p is not a built-in Policy.
func New(length int, p Policy) (Limits, error) {
	if length < 1 {
		return Limits{}, limitsErrorf("New", ErrInvalidLength)
	}
	if !p.Valid() {
		return Limits{}, limitsErrorf("New", ErrInvalidPolicy)
	}

	return Limits{n: length, policy: p}, nil
}

// MustNew is like New but panics on error. Intended for fixtures and
// package-level variables with constant arguments.
func MustNew(length int, p Policy) Limits {
	l, err := New(length, p)
	if err != nil {
		panic(err)
	}

	return l
}

// Len returns the dimension length.
func (l Limits) Len() int { return l.n }

// Policy returns the extension policy.
func (l Limits) Policy() Policy { return l.policy }

// Clamp returns i clamped into [0, Len()-1].
func (l Limits) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= l.n {
		return l.n - 1
	}

	return i
}

// Resolve implements Boundary.
//
// An index equal to 0 or Len()-1 is inside the range under every policy;
// only indices strictly outside are clamped (Flat), zero-weighted (SafeFlat,
// Strict) or wrapped (Periodic).
func (l Limits) Resolve(i int) (int, bool) {
	switch l.policy {
	case Periodic:
		r := i % l.n
		if r < 0 {
			r += l.n
		}

		return r, true
	case SafeFlat, Strict:
		if i < 0 || i >= l.n {
			return l.Clamp(i), false
		}

		return i, true
	default:
		return l.Clamp(i), true
	}
}

// Reduce implements Boundary.
//
// Flat and SafeFlat shift a coordinate lying more than S+1 samples outside
// [0, Len()-1] by a whole number of samples, into [-S-1, -S) or
// [Len()+S, Len()+S+1). Every neighbour stays past the same edge and the
// fractional offset is kept, so the weights are unchanged while the later
// float→int conversion stays in range. Infinite coordinates map to the band
// edge with a zero offset. Periodic folds x into [0, Len()). Strict rejects
// anything outside [0, Len()-1].
func (l Limits) Reduce(x float64, support int) (float64, error) {
	if math.IsNaN(x) {
		return 0, limitsErrorf("Reduce", ErrOutOfRangeCoordinate)
	}
	if support < 1 {
		support = 1
	}
	last := float64(l.n - 1)

	switch l.policy {
	case Periodic:
		if math.IsInf(x, 0) {
			return 0, limitsErrorf("Reduce", ErrOutOfRangeCoordinate)
		}
		n := float64(l.n)
		r := math.Mod(x, n)
		if r < 0 {
			r += n
		}
		if r >= n { // rounding of tiny negative x
			r = 0
		}

		return r, nil
	case Strict:
		if x < 0 || x > last {
			return 0, limitsErrorf("Reduce", ErrOutOfRangeCoordinate)
		}

		return x, nil
	default:
		lo, hi := -float64(support)-1, last+float64(support)+1
		if x < lo {
			return lo + frac(x), nil
		}
		if x > hi {
			return hi + frac(x), nil
		}

		return x, nil
	}
}

// frac returns x - floor(x), or 0 for an infinite x.
func frac(x float64) float64 {
	if math.IsInf(x, 0) {
		return 0
	}

	return x - math.Floor(x)
}

// String implements fmt.Stringer.
func (l Limits) String() string {
	return l.policy.String() + "Limits(" + strconv.Itoa(l.n) + ")"
}
