// Package qmat: dense kernels. Every kernel is a pure function: it
// validates, allocates the result and never mutates its inputs.
// Loop order is fixed (row-major), so outputs are bit-for-bit
// deterministic for identical inputs.

package qmat

import (
	"fmt"
	"math/cmplx"
)

// Mul returns the matrix product a·b.
// Errors: ErrMatNil on nil input, ErrMatDimensionMismatch unless
// a.Cols == b.Rows.
// Complexity: O(a.r * a.c * b.c) time, O(a.r * b.c) space.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Mul: %w", ErrMatNil)
	}
	if a.c != b.r {
		return nil, fmt.Errorf("Mul: %dx%d by %dx%d: %w", a.r, a.c, b.r, b.c, ErrMatDimensionMismatch)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	var sum complex128
	for i := 0; i < a.r; i++ {
		for j := 0; j < b.c; j++ {
			sum = 0
			for k := 0; k < a.c; k++ {
				sum += a.data[i*a.c+k] * b.data[k*b.c+j]
			}
			out.data[i*b.c+j] = sum
		}
	}

	return out, nil
}

// MulVec returns the product m·v of a matrix and a column vector given as a
// flat slice. This is the hot path of gate application, so it avoids the
// column-matrix wrapper.
// Errors: ErrMatNil, ErrMatDimensionMismatch unless m.Cols == len(v).
// Complexity: O(r*c) time, O(r) space.
func MulVec(m *Dense, v []complex128) ([]complex128, error) {
	if m == nil {
		return nil, fmt.Errorf("MulVec: %w", ErrMatNil)
	}
	if m.c != len(v) {
		return nil, fmt.Errorf("MulVec: %dx%d by vector of %d: %w", m.r, m.c, len(v), ErrMatDimensionMismatch)
	}

	out := make([]complex128, m.r)
	var sum complex128
	for i := 0; i < m.r; i++ {
		sum = 0
		for k := 0; k < m.c; k++ {
			sum += m.data[i*m.c+k] * v[k]
		}
		out[i] = sum
	}

	return out, nil
}

// Kron returns the tensor (Kronecker) product a⊗b. The first factor
// occupies the high-order block: (a⊗b)[i*br+k][j*bc+l] = a[i][j]*b[k][l].
// Errors: ErrMatNil on nil input.
// Complexity: O(a.r * a.c * b.r * b.c) time and space.
func Kron(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("Kron: %w", ErrMatNil)
	}

	rows, cols := a.r*b.r, a.c*b.c
	out := &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}
	var av complex128
	for i := 0; i < a.r; i++ {
		for j := 0; j < a.c; j++ {
			av = a.data[i*a.c+j]
			if av == 0 {
				continue // block stays zero; skip the inner scan
			}
			for k := 0; k < b.r; k++ {
				for l := 0; l < b.c; l++ {
					out.data[(i*b.r+k)*cols+(j*b.c+l)] = av * b.data[k*b.c+l]
				}
			}
		}
	}

	return out, nil
}

// Dagger returns the conjugate transpose m†.
// Errors: ErrMatNil on nil input.
// Complexity: O(r*c).
func Dagger(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Dagger: %w", ErrMatNil)
	}

	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return out, nil
}

// PermuteSymmetric conjugates a square matrix by the permutation matrix P
// defined by P[i][perm[i]] = 1, returning Pᵀ·m·P. Entry-wise this is the
// pure relabeling out[perm[i]][perm[j]] = m[i][j] — no products are formed.
// Errors: ErrMatNil, ErrMatNotSquare, ErrMatDimensionMismatch if len(perm)
// differs from the dimension, ErrMatBadPermutation if perm is not a
// bijection of [0, d).
// Complexity: O(d²) time and space.
func PermuteSymmetric(m *Dense, perm []int) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("PermuteSymmetric: %w", ErrMatNil)
	}
	if m.r != m.c {
		return nil, fmt.Errorf("PermuteSymmetric: %w", ErrMatNotSquare)
	}
	d := m.r
	if len(perm) != d {
		return nil, fmt.Errorf("PermuteSymmetric: permutation of %d over %dx%d: %w", len(perm), d, d, ErrMatDimensionMismatch)
	}
	seen := make([]bool, d)
	for _, p := range perm {
		if p < 0 || p >= d || seen[p] {
			return nil, fmt.Errorf("PermuteSymmetric: %w", ErrMatBadPermutation)
		}
		seen[p] = true
	}

	out := &Dense{r: d, c: d, data: make([]complex128, d*d)}
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			out.data[perm[i]*d+perm[j]] = m.data[i*d+j]
		}
	}

	return out, nil
}

// Scale returns alpha·m.
// Errors: ErrMatNil on nil input.
// Complexity: O(r*c).
func Scale(alpha complex128, m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Scale: %w", ErrMatNil)
	}

	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, v := range m.data {
		out.data[i] = alpha * v
	}

	return out, nil
}
