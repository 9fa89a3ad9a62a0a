// Package gates: the quantum Fourier transform operator.

package gates

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/quanta/qmat"
)

// QFT returns the n-qubit quantum Fourier transform operator
//
//	F[j][k] = ω^{j·k} / √N,  ω = e^{2πi/N},  N = 2^n.
//
// Applied to the full register (targets n−1 … 0) it Fourier-transforms the
// amplitude vector; composed with its Inverse it cancels to identity.
// Panics on n < 1 (static catalogue data, programmer error).
// Complexity: O(4^n) construction.
func QFT(n int) qmat.Operator {
	if n < 1 {
		panic("gates: QFT(n<1)")
	}

	dim := 1 << uint(n)
	m, err := qmat.NewDense(dim, dim)
	if err != nil {
		panic(fmt.Sprintf("gates: QFT(%d): %v", n, err))
	}
	norm := 1 / math.Sqrt(float64(dim))
	omega := 2 * math.Pi / float64(dim)
	for j := 0; j < dim; j++ {
		for k := 0; k < dim; k++ {
			// ω^{jk}/√N, phase reduced mod 2π to keep large products stable.
			phase := omega * float64((j*k)%dim)
			if err = m.Set(j, k, cmplx.Rect(norm, phase)); err != nil {
				panic(fmt.Sprintf("gates: QFT(%d): %v", n, err))
			}
		}
	}

	return qmat.Operator{Name: fmt.Sprintf("QFT%d", n), Mat: m}
}
