// Package qmat_test contains unit tests for the dense kernels.
package qmat_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quanta/qmat"
)

// mustRows builds a Dense from literal rows, failing the test on error.
func mustRows(t *testing.T, rows [][]complex128) *qmat.Dense {
	t.Helper()
	m, err := qmat.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// assertMatEqual compares every entry of got against want within eps.
func assertMatEqual(t *testing.T, want [][]complex128, got *qmat.Dense, eps float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "row count")
	require.Equal(t, len(want[0]), got.Cols(), "col count")
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			assert.InDeltaf(t, 0, cmplx.Abs(v-want[i][j]), eps, "entry (%d,%d) = %v, want %v", i, j, v, want[i][j])
		}
	}
}

// TestMul pins a hand-computed 2x2 product and the mismatch sentinel.
func TestMul(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]complex128{{1, 2}, {3, 4}})
	b := mustRows(t, [][]complex128{{0, 1}, {1, 0}})

	got, err := qmat.Mul(a, b)
	require.NoError(t, err)
	assertMatEqual(t, [][]complex128{{2, 1}, {4, 3}}, got, 0)

	wide := mustRows(t, [][]complex128{{1, 2, 3}})
	_, err = qmat.Mul(a, wide)
	require.ErrorIs(t, err, qmat.ErrMatDimensionMismatch, "2x2 cols != 1x3 rows")
	_, err = qmat.Mul(wide, wide)
	require.ErrorIs(t, err, qmat.ErrMatDimensionMismatch)

	_, err = qmat.Mul(nil, a)
	require.ErrorIs(t, err, qmat.ErrMatNil)
}

// TestMulVec checks the matrix×column hot path.
func TestMulVec(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]complex128{{0, 1}, {1, 0}})
	out, err := qmat.MulVec(m, []complex128{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []complex128{0, 1}, out, "bit flip swaps the basis amplitudes")

	_, err = qmat.MulVec(m, []complex128{1, 0, 0})
	require.ErrorIs(t, err, qmat.ErrMatDimensionMismatch)
	_, err = qmat.MulVec(nil, []complex128{1})
	require.ErrorIs(t, err, qmat.ErrMatNil)
}

// TestKron verifies the high-order block convention: the FIRST factor
// scales whole blocks of the second.
func TestKron(t *testing.T) {
	t.Parallel()

	a := mustRows(t, [][]complex128{{1, 0}, {0, 2}})
	b := mustRows(t, [][]complex128{{0, 1}, {1, 0}})

	got, err := qmat.Kron(a, b)
	require.NoError(t, err)
	assertMatEqual(t, [][]complex128{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 2},
		{0, 0, 2, 0},
	}, got, 0)

	_, err = qmat.Kron(nil, b)
	require.ErrorIs(t, err, qmat.ErrMatNil)
}

// TestDagger pins conjugate-transpose entries.
func TestDagger(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]complex128{{1 + 1i, 2}, {3i, 4}})
	got, err := qmat.Dagger(m)
	require.NoError(t, err)
	assertMatEqual(t, [][]complex128{{1 - 1i, -3i}, {2, 4}}, got, 0)
}

// TestScale checks scalar multiplication.
func TestScale(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]complex128{{1, 2}})
	got, err := qmat.Scale(2i, m)
	require.NoError(t, err)
	assertMatEqual(t, [][]complex128{{2i, 4i}}, got, 0)
}

// TestPermuteSymmetric covers the relabeling semantics
// out[perm[i]][perm[j]] = m[i][j] and the permutation validation.
func TestPermuteSymmetric(t *testing.T) {
	t.Parallel()

	m := mustRows(t, [][]complex128{
		{11, 12, 13},
		{21, 22, 23},
		{31, 32, 33},
	})

	// Identity permutation is a no-op.
	same, err := qmat.PermuteSymmetric(m, []int{0, 1, 2})
	require.NoError(t, err)
	assertMatEqual(t, [][]complex128{{11, 12, 13}, {21, 22, 23}, {31, 32, 33}}, same, 0)

	// Rotate 0→1→2→0: row/col i of the input lands at perm[i].
	rot, err := qmat.PermuteSymmetric(m, []int{1, 2, 0})
	require.NoError(t, err)
	assertMatEqual(t, [][]complex128{
		{33, 31, 32},
		{13, 11, 12},
		{23, 21, 22},
	}, rot, 0)

	_, err = qmat.PermuteSymmetric(m, []int{0, 1})
	require.ErrorIs(t, err, qmat.ErrMatDimensionMismatch)
	_, err = qmat.PermuteSymmetric(m, []int{0, 1, 1})
	require.ErrorIs(t, err, qmat.ErrMatBadPermutation)
	_, err = qmat.PermuteSymmetric(m, []int{0, 1, 3})
	require.ErrorIs(t, err, qmat.ErrMatBadPermutation)

	wide := mustRows(t, [][]complex128{{1, 2}})
	_, err = qmat.PermuteSymmetric(wide, []int{0, 1})
	require.ErrorIs(t, err, qmat.ErrMatNotSquare)
}

// TestKronMulConsistency cross-checks kernels against the mixed-product
// identity (A⊗B)(x⊗y) = (Ax)⊗(By) on small vectors.
func TestKronMulConsistency(t *testing.T) {
	t.Parallel()

	s := complex(1/math.Sqrt2, 0)
	h := mustRows(t, [][]complex128{{s, s}, {s, -s}})
	x := mustRows(t, [][]complex128{{0, 1}, {1, 0}})

	hx, err := qmat.Kron(h, x)
	require.NoError(t, err)

	// (H⊗X)|00⟩: H|0⟩ = (|0⟩+|1⟩)/√2, X|0⟩ = |1⟩ ⇒ (|01⟩+|11⟩)/√2.
	out, err := qmat.MulVec(hx, []complex128{1, 0, 0, 0})
	require.NoError(t, err)
	want := []complex128{0, complex(1/math.Sqrt2, 0), 0, complex(1/math.Sqrt2, 0)}
	for i := range want {
		assert.InDelta(t, 0, cmplx.Abs(out[i]-want[i]), qmat.DefaultEpsilon)
	}
}
