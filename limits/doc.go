// SPDX-License-Identifier: MIT

// Package limits encodes how an interpolation kernel sees the edges of a
// sampled dimension.
//
// A Limits value couples the length of one dimension with an extension
// policy. Kernels with compact support S touch S neighbouring samples; near
// the edges some of those neighbours fall outside [0, len-1] and the policy
// decides what they become:
//
//	Flat      — clamp to the nearest edge, keep the weight (edge replication)
//	SafeFlat  — clamp to the nearest edge, force the weight to zero
//	Periodic  — wrap around (index mod len)
//	Strict    — coordinates outside [0, len-1] are rejected
//
// Quick ASCII picture for len=5 and a 4-tap kernel at x = -0.5:
//
//	neighbours  -2  -1   0   1
//	Flat         0   0   0   1   (all weights kept)
//	SafeFlat     0   0   0   1   (weights of -2 and -1 forced to 0)
//	Periodic     3   4   0   1
//
// Boundary is the open interface every policy satisfies. Limits is the
// built-in tagged variant: a small value type dispatched with a switch, which
// keeps the per-coordinate hot loop free of indirect calls when used
// directly. Custom policies implement Boundary and plug into package interp
// unchanged.
//
// All values are immutable and safe for concurrent use.
package limits
