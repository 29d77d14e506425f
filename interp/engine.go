// SPDX-License-Identifier: MIT

package interp

// coefSource yields the neighbour set of each output position of a 1-D
// operator. Sparse computes it on the fly, Tabulated reads a table.
type coefSource interface {
	// support returns S.
	support() int

	// coefs returns the neighbour set of position p. The returned slices are
	// either idx/w (filled) or read-only views owned by the source.
	coefs(p int, idx []int, w []float64) ([]int, []float64, error)

	// validate reports any coordinate the source would reject, so that
	// apply can fail before writing.
	validate() error
}

// line describes one 1-D operator acting along an axis of a row-major
// array viewed as (pre, len, post): n source samples, m output positions.
type line struct {
	cs      coefSource
	n, m    int
	workers int
}

// apply computes dst = alpha·op(src) + beta·dst along the middle axis of a
// (pre, ·, post) layout. Direct reads (pre, n, post) and writes
// (pre, m, post); Adjoint reads (pre, m, post) and writes (pre, n, post).
// Buffer lengths are checked by the caller; alpha == 0 is handled here.
func (l line) apply(pre, post int, alpha float64, mode Mode, src []float64, beta float64, dst []float64) error {
	if alpha == 0 {
		scaleInPlace(beta, dst)

		return nil
	}
	if err := l.cs.validate(); err != nil {
		return err
	}
	if mode == Adjoint {
		scaleInPlace(beta, dst)

		return scatterReduce(l.m, l.workers, dst, func(lo, hi int, acc []float64) error {
			return l.adjoint(lo, hi, pre, post, alpha, src, acc)
		})
	}

	return parallelFor(l.m, l.workers, func(lo, hi int) error {
		return l.direct(lo, hi, pre, post, alpha, src, beta, dst)
	})
}

// direct handles output positions [lo, hi).
func (l line) direct(lo, hi, pre, post int, alpha float64, src []float64, beta float64, dst []float64) error {
	s := l.cs.support()
	idxBuf, wBuf := make([]int, s), make([]float64, s)
	for p := lo; p < hi; p++ {
		idx, w, err := l.cs.coefs(p, idxBuf, wBuf)
		if err != nil {
			return err
		}
		for a := 0; a < pre; a++ {
			srcRow := a * l.n
			o := (a*l.m + p) * post
			for c := 0; c < post; c++ {
				var sum float64
				for k, j := range idx {
					sum += w[k] * src[(srcRow+j)*post+c]
				}
				dst[o+c] = combine(alpha, sum, beta, dst[o+c])
			}
		}
	}

	return nil
}

// adjoint scatters output positions [lo, hi) into acc.
func (l line) adjoint(lo, hi, pre, post int, alpha float64, src, acc []float64) error {
	s := l.cs.support()
	idxBuf, wBuf := make([]int, s), make([]float64, s)
	for p := lo; p < hi; p++ {
		idx, w, err := l.cs.coefs(p, idxBuf, wBuf)
		if err != nil {
			return err
		}
		for a := 0; a < pre; a++ {
			dstRow := a * l.n
			o := (a*l.m + p) * post
			for c := 0; c < post; c++ {
				v := alpha * src[o+c]
				for k, j := range idx {
					acc[(dstRow+j)*post+c] += w[k] * v
				}
			}
		}
	}

	return nil
}

// volume multiplies extents; the shapes reaching it are already validated.
func volume(shape []int) int {
	v := 1
	for _, n := range shape {
		v *= n
	}

	return v
}

// checkBuffers validates buffer lengths against an operator shape.
func checkBuffers(tag string, in, out []int, mode Mode, src, dst []float64) error {
	if !mode.Valid() {
		return interpErrorf(tag, ErrInvalidMode)
	}
	ns, nd := volume(in), volume(out)
	if mode == Adjoint {
		ns, nd = nd, ns
	}
	if len(src) != ns || len(dst) != nd {
		return interpErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// allocApply implements Operator.Apply on top of ApplyScaled.
func allocApply(op Operator, mode Mode, src []float64) ([]float64, error) {
	if !mode.Valid() {
		return nil, interpErrorf("Apply", ErrInvalidMode)
	}
	size := op.OutputSize()
	if mode == Adjoint {
		size = op.InputSize()
	}
	dst := make([]float64, volume(size))
	if err := op.ApplyScaled(1, mode, src, 0, dst); err != nil {
		return nil, err
	}

	return dst, nil
}
