// Package gates: the unitary catalogue. Matrices are written row by row in
// the computational basis, most significant qubit first, matching the
// engine's index convention.

package gates

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/quanta/qmat"
)

// mustOperator builds a catalogue operator from literal rows. The data is
// static, so a malformed matrix is a programmer error — panic, not error.
func mustOperator(name string, rows [][]complex128) qmat.Operator {
	m, err := qmat.NewDenseFromRows(rows)
	if err != nil {
		panic(fmt.Sprintf("gates: %s: %v", name, err))
	}

	return qmat.Operator{Name: name, Mat: m}
}

// X returns the Pauli-X (bit flip) gate.
func X() qmat.Operator {
	return mustOperator("PAULI_X", [][]complex128{
		{0, 1},
		{1, 0},
	})
}

// Y returns the Pauli-Y gate.
func Y() qmat.Operator {
	return mustOperator("PAULI_Y", [][]complex128{
		{0, -1i},
		{1i, 0},
	})
}

// Z returns the Pauli-Z (phase flip) gate.
func Z() qmat.Operator {
	return mustOperator("PAULI_Z", [][]complex128{
		{1, 0},
		{0, -1},
	})
}

// H returns the Hadamard gate, mapping |0⟩ ↦ |+⟩ and |1⟩ ↦ |−⟩.
func H() qmat.Operator {
	s := complex(1/math.Sqrt2, 0)

	return mustOperator("HADAMARD", [][]complex128{
		{s, s},
		{s, -s},
	})
}

// R returns the phase-rotation gate diag(1, e^{iφ}). The angle is baked
// into the display name with four decimals, qclib-report style.
func R(phi float64) qmat.Operator {
	return mustOperator(fmt.Sprintf("PHASE-ROT(%.4f)", phi), [][]complex128{
		{1, 0},
		{0, cmplx.Exp(complex(0, phi))},
	})
}

// SWAP returns the two-qubit swap gate.
func SWAP() qmat.Operator {
	return mustOperator("SWAP", [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})
}

// CNOT returns the controlled-NOT gate: the first (most significant) qubit
// of the target list controls, the second flips.
func CNOT() qmat.Operator {
	return mustOperator("C-NOT", [][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
}

// TOFFOLI returns the doubly-controlled NOT gate on three qubits.
func TOFFOLI() qmat.Operator {
	return mustOperator("TOFFOLI", [][]complex128{
		{1, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 1, 0},
	})
}
