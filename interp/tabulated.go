// SPDX-License-Identifier: MIT

package interp

import (
	"github.com/katalvlaran/lvinterp/kernel"
	"github.com/katalvlaran/lvinterp/limits"
	"gonum.org/v1/gonum/mat"
)

// Tabulated is a 1-D interpolation operator whose neighbour sets are
// computed once at construction and reused by every apply.
//
// Memory is O(m·S); each apply skips kernel evaluation entirely. The table
// is immutable: if the coordinates, kernel or limits change, build a new
// Tabulated. Nothing detects staleness.
type Tabulated struct {
	ker      kernel.Kernel
	bnd      limits.Boundary
	n, m, s  int
	idx      []int     // m*s, row p at [p*s, (p+1)*s)
	w        []float64 // m*s
	outShape []int
	workers  int
}

var (
	_ Operator   = (*Tabulated)(nil)
	_ coefSource = (*Tabulated)(nil)
)

// NewTabulated builds the table for the given coordinates.
//
// Errors: as NewSparse, plus ErrOutOfRangeCoordinate for any coordinate the
// boundary refuses (construction fails, no partial table).
// Complexity: O(m·S) time and memory.
func NewTabulated(k kernel.Kernel, b limits.Boundary, coords Coordinates, opts ...Option) (*Tabulated, error) {
	sp, err := NewSparse(k, b, coords, opts...)
	if err != nil {
		return nil, interpErrorf("NewTabulated", err)
	}
	t, err := sp.Tabulate()
	if err != nil {
		return nil, interpErrorf("NewTabulated", err)
	}

	return t, nil
}

func newTabulated(k kernel.Kernel, b limits.Boundary, coords Coordinates, outShape []int, workers int) (*Tabulated, error) {
	s, m := k.Support(), coords.Len()
	t := &Tabulated{
		ker:      k,
		bnd:      b,
		n:        b.Len(),
		m:        m,
		s:        s,
		idx:      make([]int, m*s),
		w:        make([]float64, m*s),
		outShape: append([]int(nil), outShape...),
		workers:  workers,
	}
	for p := 0; p < m; p++ {
		lo, hi := p*s, (p+1)*s
		if err := coefs(k, s, b, coords.At(p), t.idx[lo:hi], t.w[lo:hi]); err != nil {
			return nil, interpErrorf("Tabulate", err)
		}
	}

	return t, nil
}

// Kernel returns the kernel the table was built with.
func (t *Tabulated) Kernel() kernel.Kernel { return t.ker }

// Boundary returns the limits the table was built with.
func (t *Tabulated) Boundary() limits.Boundary { return t.bnd }

// Support returns the number of entries per row.
func (t *Tabulated) Support() int { return t.s }

// Coefs returns copies of the neighbour set of output position p.
// Panics if p is outside [0, m).
func (t *Tabulated) Coefs(p int) ([]int, []float64) {
	lo, hi := p*t.s, (p+1)*t.s

	return append([]int(nil), t.idx[lo:hi]...), append([]float64(nil), t.w[lo:hi]...)
}

// InputSize implements Operator.
func (t *Tabulated) InputSize() []int { return []int{t.n} }

// OutputSize implements Operator.
func (t *Tabulated) OutputSize() []int { return append([]int(nil), t.outShape...) }

// Apply implements Operator.
func (t *Tabulated) Apply(mode Mode, src []float64) ([]float64, error) {
	return allocApply(t, mode, src)
}

// ApplyTo implements Operator.
func (t *Tabulated) ApplyTo(dst []float64, mode Mode, src []float64) error {
	return t.ApplyScaled(1, mode, src, 0, dst)
}

// ApplyScaled implements Operator.
func (t *Tabulated) ApplyScaled(alpha float64, mode Mode, src []float64, beta float64, dst []float64) error {
	if err := checkBuffers("Tabulated.ApplyScaled", t.InputSize(), t.outShape, mode, src, dst); err != nil {
		return err
	}

	return t.line().apply(1, 1, alpha, mode, src, beta, dst)
}

// Matrix returns the explicit m×n matrix of the Direct operator. Repeated
// indices in a row (clamped neighbours) are summed.
// Returns nil when m or n is zero.
func (t *Tabulated) Matrix() *mat.Dense {
	if t.m == 0 || t.n == 0 {
		return nil
	}
	a := mat.NewDense(t.m, t.n, nil)
	for p := 0; p < t.m; p++ {
		for k := p * t.s; k < (p+1)*t.s; k++ {
			a.Set(p, t.idx[k], a.At(p, t.idx[k])+t.w[k])
		}
	}

	return a
}

func (t *Tabulated) line() line {
	return line{cs: t, n: t.n, m: t.m, workers: t.workers}
}

func (t *Tabulated) support() int { return t.s }

func (t *Tabulated) coefs(p int, _ []int, _ []float64) ([]int, []float64, error) {
	lo, hi := p*t.s, (p+1)*t.s

	return t.idx[lo:hi], t.w[lo:hi], nil
}

func (t *Tabulated) validate() error { return nil }
