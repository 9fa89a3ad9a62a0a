// Package gates: measurement bases. Rows are the reference vectors;
// orthonormality is what the measurement engine validates, and the tests
// here pin it for every catalogue entry.

package gates

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quanta/qmat"
)

// mustBasis builds a catalogue basis from literal rows scaled by factor.
func mustBasis(name string, factor float64, rows [][]complex128) qmat.Basis {
	m, err := qmat.NewDenseFromRows(rows)
	if err != nil {
		panic(fmt.Sprintf("gates: %s: %v", name, err))
	}
	scaled, err := qmat.Scale(complex(factor, 0), m)
	if err != nil {
		panic(fmt.Sprintf("gates: %s: %v", name, err))
	}

	return qmat.Basis{Name: name, Mat: scaled}
}

// BellBasis returns the two-qubit Bell basis: the four maximally entangled
// states (|00⟩±|11⟩)/√2 and (|01⟩±|10⟩)/√2 as rows.
func BellBasis() qmat.Basis {
	return mustBasis("BELL_BASIS", 1/math.Sqrt2, [][]complex128{
		{1, 0, 0, 1},
		{1, 0, 0, -1},
		{0, 1, 1, 0},
		{0, 1, -1, 0},
	})
}

// HadamardBasis returns the single-qubit |+⟩/|−⟩ basis.
func HadamardBasis() qmat.Basis {
	return mustBasis("HDM_BASIS", 1/math.Sqrt2, [][]complex128{
		{1, 1},
		{1, -1},
	})
}
