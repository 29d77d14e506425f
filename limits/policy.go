// SPDX-License-Identifier: MIT

package limits

// Policy selects the boundary-extension rule of a Limits value.
//
//   - Flat: out-of-range neighbours replicate the nearest edge sample.
//   - SafeFlat: out-of-range neighbours are clamped but contribute nothing.
//   - Periodic: out-of-range neighbours wrap around the dimension.
//   - Strict: coordinates outside the sampled range are an error;
//     neighbours that still fall outside contribute nothing.
type Policy int

const (
	// Flat replicates edge samples (clamp-to-edge).
	Flat Policy = iota

	// SafeFlat clamps indices and zeroes the weight of every clamped neighbour.
	SafeFlat

	// Periodic wraps indices modulo the dimension length.
	Periodic

	// Strict refuses to extrapolate.
	Strict
)

// DefaultPolicy is the policy used when a kernel gives no other hint.
const DefaultPolicy = Flat

var policyNames = [...]string{
	Flat:     "Flat",
	SafeFlat: "SafeFlat",
	Periodic: "Periodic",
	Strict:   "Strict",
}

// Valid reports whether p is one of the built-in policies.
func (p Policy) Valid() bool {
	return p >= Flat && p <= Strict
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	if !p.Valid() {
		return "Policy(?)"
	}

	return policyNames[p]
}
