// Package lvinterp is linear interpolation of regularly sampled data,
// expressed as sparse linear operators with an exact adjoint.
//
// What is in the box?
//
//	A small, dependency-light library that brings together:
//		• Boundary limits: Flat, SafeFlat, Periodic and Strict edge handling
//		• Kernels: Box, Triangle, B-splines, Catmull-Rom / Keys, Lanczos, custom φ
//		• 1-D operators: on-the-fly (Sparse) or precomputed (Tabulated)
//		• N-D separable and 2-D non-separable (affine) operators
//		• Direct, Adjoint and scaled combine dst = α·op(src) + β·dst
//
// Why operators?
//
//   - Interpolation is linear in the samples; the adjoint is what inverse
//     problems, gradient code and iterative solvers need.
//   - ⟨A·x, y⟩ = ⟨x, Aᵀ·y⟩ holds up to rounding for every operator.
//   - Nothing is materialized unless you ask (Tabulated, interp.Matrix).
//
// Packages:
//
//	limits/  — Boundary interface and the built-in Limits{len, policy}
//	kernel/  — Kernel interface, shape catalog, options
//	grid/    — dense row-major N-D Array, shape validation, AllClose
//	affine/  — 2-D affine Transform (Apply, Compose, Inverse)
//	interp/  — Coefs, Sparse, Tabulated, Separable, Nonseparable, facades
//
// Quick ASCII example, 4 samples resampled by a Triangle kernel at x = 1.25:
//
//	src    0 ── 10 ── 20 ── 30
//	             ▲
//	        0.75·10 + 0.25·20 = 12.5
//
//	go get github.com/katalvlaran/lvinterp
package lvinterp
