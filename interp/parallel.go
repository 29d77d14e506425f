// SPDX-License-Identifier: MIT

package interp

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// parallelFor runs fn over [0, n) split into at most workers contiguous
// chunks. workers <= 1 runs fn(0, n) on the calling goroutine.
func parallelFor(n, workers int, fn func(lo, hi int) error) error {
	if workers <= 1 || n < 2 {
		return fn(0, n)
	}
	chunks := min(workers, n)
	var g errgroup.Group
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		lo, hi := c*n/chunks, (c+1)*n/chunks
		g.Go(func() error { return fn(lo, hi) })
	}

	return g.Wait()
}

// scatterReduce runs an accumulating fn over [0, n). Sequentially fn adds
// straight into dst; in parallel every chunk adds into a private zeroed
// buffer and the buffers are summed into dst in chunk order afterwards.
func scatterReduce(n, workers int, dst []float64, fn func(lo, hi int, acc []float64) error) error {
	if workers <= 1 || n < 2 {
		return fn(0, n, dst)
	}
	chunks := min(workers, n)
	parts := make([][]float64, chunks)
	var g errgroup.Group
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		lo, hi := c*n/chunks, (c+1)*n/chunks
		parts[c] = make([]float64, len(dst))
		g.Go(func() error { return fn(lo, hi, parts[c]) })
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, p := range parts {
		floats.Add(dst, p)
	}

	return nil
}

// scaleInPlace sets dst = beta·dst without reading dst when beta == 0.
func scaleInPlace(beta float64, dst []float64) {
	switch beta {
	case 0:
		clear(dst)
	case 1:
	default:
		floats.Scale(beta, dst)
	}
}

// combine returns alpha·s + beta·old, ignoring old when beta == 0.
func combine(alpha, s, beta, old float64) float64 {
	if beta == 0 {
		return alpha * s
	}

	return alpha*s + beta*old
}
