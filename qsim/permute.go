// Package qsim: qubit-permutation algebra.
//
// This is the one genuinely tricky piece of index arithmetic in the engine,
// so it lives in pure functions over integer indices — no matrices, no
// pointers — and is unit-tested against the round-trip property before
// anything else touches it.
//
// Convention reminder: amplitude index bit b (LSB = 0) holds qubit b, so
// qubit n−1 is the most significant bit. An ordering is "visually correct":
// ordering[0] names the qubit that must land in the TOP bit position,
// ordering[1] the next one down, and so on.

package qsim

// buildOrdering extends targets to a full permutation of [0, n): every
// qubit index not already present is appended in DESCENDING original
// order, which keeps the untouched qubits in their original relative
// significance below the relocated ones.
// Precondition: targets already validated (distinct, in range).
// Complexity: O(n) time and space.
func buildOrdering(n int, targets []int) []int {
	ordering := make([]int, len(targets), n)
	copy(ordering, targets)

	seen := make([]bool, n)
	for _, q := range targets {
		seen[q] = true
	}
	for q := n - 1; q >= 0; q-- {
		if !seen[q] {
			ordering = append(ordering, q)
		}
	}

	return ordering
}

// shuffledIndexes materializes the forward permutation of basis-state
// indices induced by a full qubit ordering: for every source index i and
// every bit position b (b = 0 is least significant), bit b of i is written
// into bit position ordering[n−b−1] of the destination value.
//
// The returned slice fwd is a row-selection map: the forward permutation
// gathers amplitude fwd[i] into slot i, which places qubit ordering[0] in
// the top bit of the reordered index space.
// Complexity: O(n·2^n) time, O(2^n) space.
func shuffledIndexes(ordering []int) []int {
	n := len(ordering)
	fwd := make([]int, 1<<uint(n))
	var dst int
	for i := range fwd {
		dst = 0
		for b := 0; b < n; b++ {
			dst |= ((i >> uint(b)) & 1) << uint(ordering[n-b-1])
		}
		fwd[i] = dst
	}

	return fwd
}

// permPair is the (forward, inverse) permutation pair over basis-state
// indices, stored as the single forward row-selection map — the inverse is
// the same map applied as a scatter. For every basis state x,
// inverse(forward(x)) == x exactly.
type permPair struct {
	fwd []int // fwd[i] = source amplitude gathered into slot i
}

// newPermPair builds the permutation pair relocating targets to the top
// bit positions of an n-qubit index space.
// Precondition: targets already validated.
// Complexity: O(n·2^n).
func newPermPair(n int, targets []int) permPair {
	return permPair{fwd: shuffledIndexes(buildOrdering(n, targets))}
}

// forward applies the forward permutation to a state vector: the returned
// slice holds out[i] = v[fwd[i]] (a gather — exactly rmat·v for the 0/1
// row-selection matrix rmat with rmat[i][fwd[i]] = 1).
// Complexity: O(2^n) time and space.
func (p permPair) forward(v []complex128) []complex128 {
	out := make([]complex128, len(v))
	for i, src := range p.fwd {
		out[i] = v[src]
	}

	return out
}

// inverse applies the exact inverse permutation: out[fwd[i]] = v[i]
// (a scatter — rmatᵀ·v). forward followed by inverse is the identity.
// Complexity: O(2^n) time and space.
func (p permPair) inverse(v []complex128) []complex128 {
	out := make([]complex128, len(v))
	for i, dst := range p.fwd {
		out[dst] = v[i]
	}

	return out
}
