// SPDX-License-Identifier: MIT

// Package kernel provides interpolation kernels with compact support.
//
// A kernel of support S is a shape φ(u), zero for |u| ≥ S/2, that turns the
// distance between a coordinate and a sample into a weight. Evaluating a
// kernel at a coordinate touches exactly S samples.
//
// Weight convention:
//
//	Let c = (S-1)/2 (integer division) and t the fractional offset of the
//	coordinate with respect to its base sample j0 (floor(x) for even S,
//	round-half-up(x) for odd S). Weights(t, w) fills
//
//	    w[o] = φ(t + c - o),   o = 0..S-1,
//
//	which is the weight of sample j0 - c + o.
//
// Catalog:
//
//	Box               S=1  nearest neighbour
//	Triangle          S=2  linear
//	QuadraticBSpline  S=3
//	CubicBSpline      S=4  smoothing, not interpolating
//	CatmullRom        S=4  Keys cubic with a = -1/2
//	Keys(a)           S=4  Keys cubic family
//	Lanczos(S)        S even, normalized windowed sinc
//
// Every kernel carries a boundary hint (limits.Policy) that operators use
// when the caller does not supply explicit limits. Use WithBoundary to
// change it and WithNormalization to force weights to sum to one.
//
// Kernels are immutable and safe for concurrent use.
package kernel
