// SPDX-License-Identifier: MIT

// Package interp implements linear interpolation as sparse linear operators.
//
// Interpolating a sampled signal at a set of real coordinates is linear in
// the samples: every output value is a weighted sum of the S source samples
// a kernel of support S touches. The operators in this package never store
// that matrix; they recompute (or, for Tabulated, look up) each row's
// neighbour set and apply it in one of two modes:
//
//	Direct   dst = A·src        interpolate
//	Adjoint  dst = Aᵀ·src       scatter back, exact transpose of Direct
//
// and in the scaled form dst = α·op(src) + β·dst. β == 0 never reads dst,
// α == 0 only scales it. The adjoint satisfies ⟨A·x, y⟩ = ⟨x, Aᵀ·y⟩ up to
// rounding, which is what iterative solvers and gradient code rely on.
//
// Operators:
//
//	Sparse        1-D, neighbour sets computed on the fly
//	Tabulated     1-D, neighbour sets precomputed once (O(m·S) memory)
//	Separable     N-D, one 1-D operator per axis, applied in sequence
//	Nonseparable  2-D, coordinates from a Mapping (e.g. affine.Transform)
//
// Coordinates come from any Coordinates implementation: Points (a slice),
// Positional (an index→coordinate rule) or GridPoints (a grid.Array, whose
// shape the output takes). Edge handling is delegated to limits.Boundary;
// kernel shapes to kernel.Kernel.
//
// Indices are 0-based and buffers are flat row-major []float64. The sample
// src[k] sits at coordinate k.
//
// Every check (mode, buffer lengths, coordinate acceptance by the boundary)
// runs before the first write: an apply either completes or leaves dst as
// it was. Operators are immutable and safe for concurrent use on distinct
// destinations. WithWorkers spreads an apply over goroutines; parallel
// adjoints reduce per-worker buffers, so the last bits of the result may
// depend on the worker count.
//
// Quick start:
//
//	b := limits.MustNew(len(src), limits.Flat)
//	op, _ := interp.NewSparse(kernel.Triangle(), b, interp.Points{0.5, 2.25})
//	out, _ := op.Apply(interp.Direct, src)
package interp
