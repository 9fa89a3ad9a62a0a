// Package qsim implements the state-vector engine of the quanta simulator.
//
// A Register owns the 2^n complex amplitudes of an n-qubit system. The
// amplitude index is bit-addressed little-endian-reversed: qubit n−1 sits in
// the most significant bit of the flattened index, qubit 0 in the least
// significant. Every piece of permutation math in this package is defined
// relative to that convention.
//
// The engine's moving parts:
//
//   - Permutation algebra: given a target ordering of qubit indices, build a
//     forward/inverse pair of index-bit permutations that relocate the chosen
//     qubits into the top bit positions (in the order requested) while the
//     remaining qubits keep their original relative order below. The pair is
//     exactly mutually inverse over every basis state.
//   - Operator embedding: tensor a k-qubit operator with identity up to full
//     size (operator in the high-order block), then conjugate by the
//     permutation pair so it acts on the requested qubits — adjacent or not,
//     in any order.
//   - Measurement: permute the measured qubits to the top, optionally rotate
//     into a caller-supplied orthonormal basis, aggregate |amplitude|² into
//     2^k outcome buckets, sample one outcome from the register's RNG,
//     collapse and renormalize, then undo the basis rotation and the
//     permutation — in exactly that order; the transforms do not commute.
//
// Complexity: gate application and measurement are O(4^n) in time (dense
// operator × vector) and O(4^n) transient space for the stretched operator;
// measurement without a custom basis moves O(2^n) amplitudes.
//
// Concurrency: a Register is owned by a single caller; it is NOT safe for
// concurrent use. All randomness flows through the register's explicit RNG
// (WithRand/WithSeed), so runs are reproducible.
package qsim
