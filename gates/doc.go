// Package gates is the named gate and basis catalogue for the quanta
// simulator: static (name, matrix) data over qmat, no algorithm.
//
// Single-qubit gates: X, Y, Z (Pauli), H (Hadamard), R (phase rotation).
// Two-qubit gates: SWAP, CNOT. Three-qubit: TOFFOLI. Bases: BellBasis,
// HadamardBasis. QFT builds the n-qubit quantum Fourier transform.
//
// Every catalogue matrix is unitary (and every basis orthonormal) by
// construction; the engine checks neither at apply time beyond shape, so
// the catalogue's own tests pin these properties down instead.
//
// Constructors return fresh Operator values on every call — catalogue
// entries are data and callers may not observe shared storage.
package gates
