// Package quanta is an in-memory quantum register simulator — a dense
// complex state vector with gates, projective measurement and a small
// operator algebra on top.
//
// 🚀 What is quanta?
//
//	A deterministic, single-owner library that brings together:
//		• qmat/  — complex dense matrices: product, tensor (Kronecker) product,
//		           conjugate transpose, unitarity & orthonormality validators
//		• qsim/  — the engine: register construction, qubit-permutation algebra,
//		           operator embedding onto arbitrary qubit subsets, measurement
//		           with optional custom orthonormal bases, collapse & renormalize
//		• gates/ — the named catalogue: Pauli X/Y/Z, Hadamard, phase rotation,
//		           SWAP, CNOT, TOFFOLI, the Bell and Hadamard bases, QFT
//
// ✨ Why choose quanta?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – sampling flows through an explicit, seedable RNG
//   - Pure Go – no cgo, no hidden build steps
//   - Honest errors – sentinel errors matched via errors.Is, never panics
//     on user input
//
// A register of n qubits holds 2^n complex amplitudes. Gates are plain
// (name, matrix) values; a k-qubit gate may target ANY k distinct qubits in
// any order — the engine relocates it with an index-bit permutation pair and
// a tensor expansion, then applies it in place. Measurement permutes the
// chosen qubits to the top bit positions, optionally changes basis,
// aggregates probabilities, samples one outcome, collapses the state and
// undoes every transform symmetrically.
//
// Quick example:
//
//	reg, _ := qsim.New(2, qsim.WithSeed(42))
//	_ = reg.Apply(gates.H(), 1)
//	_ = reg.Apply(gates.CNOT(), 1, 0)   // Bell pair (|00⟩+|11⟩)/√2
//	bits, p, _ := reg.Measure([]int{0})
//	// bits[0] is 0 or 1 with p = 0.5; qubit 1 now agrees with qubit 0.
//
// State inspection (Amplitudes, Report) is a simulator-only capability with
// no physical-hardware analogue; it exists for testing and teaching.
package quanta
