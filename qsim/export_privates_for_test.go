// Test-Bridge (White-Box) for the Private Permutation Kernels
//
// Purpose:
//   - Expose the UNEXPORTED index-permutation kernels to qsim_test ONLY.
//   - The file ends in _test.go, so it is invisible in production builds,
//     yet lives in package qsim and can reach private symbols.
//
// Provided Surface:
//   - BuildOrdering_TestOnly / ShuffledIndexes_TestOnly: pass-through to the
//     pure index functions.
//   - PermPair_TestOnly + its Forward/Inverse methods: the gather/scatter
//     pair over amplitude vectors.
//
// Risks & Maintenance:
//   - If a private kernel changes signature, mirror the change here once,
//     not across many tests.

package qsim

// BuildOrdering_TestOnly forwards to the private buildOrdering kernel.
func BuildOrdering_TestOnly(n int, targets []int) []int {
	return buildOrdering(n, targets)
}

// ShuffledIndexes_TestOnly forwards to the private shuffledIndexes kernel.
func ShuffledIndexes_TestOnly(ordering []int) []int {
	return shuffledIndexes(ordering)
}

// PermPair_TestOnly is the test-visible handle for the private permPair.
type PermPair_TestOnly struct{ p permPair }

// NewPermPair_TestOnly forwards to the private newPermPair constructor.
func NewPermPair_TestOnly(n int, targets []int) PermPair_TestOnly {
	return PermPair_TestOnly{p: newPermPair(n, targets)}
}

// Fwd returns the underlying forward row-selection map.
func (pp PermPair_TestOnly) Fwd() []int { return pp.p.fwd }

// Forward applies the gather permutation.
func (pp PermPair_TestOnly) Forward(v []complex128) []complex128 { return pp.p.forward(v) }

// Inverse applies the scatter permutation.
func (pp PermPair_TestOnly) Inverse(v []complex128) []complex128 { return pp.p.inverse(v) }
