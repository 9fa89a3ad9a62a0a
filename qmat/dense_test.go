// Package qmat_test contains unit tests for the Dense matrix type.
package qmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quanta/qmat"
)

// TestNewDense covers shape validation and zero initialization.
func TestNewDense(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r, c    int
		wantErr error
	}{
		{"2x2", 2, 2, nil},
		{"1x4 rectangular", 1, 4, nil},
		{"zero rows", 0, 3, qmat.ErrMatBadShape},
		{"zero cols", 3, 0, qmat.ErrMatBadShape},
		{"negative", -1, 2, qmat.ErrMatBadShape},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := qmat.NewDense(tc.r, tc.c)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.r, m.Rows())
			require.Equal(t, tc.c, m.Cols())
			v, err := m.At(0, 0)
			require.NoError(t, err)
			assert.Equal(t, complex128(0), v)
		})
	}
}

// TestNewDenseFromRows covers rectangular input and ragged rejection.
func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	m, err := qmat.NewDenseFromRows([][]complex128{
		{1, 2i},
		{3, 4},
	})
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2i, v)

	_, err = qmat.NewDenseFromRows([][]complex128{{1, 2}, {3}})
	require.ErrorIs(t, err, qmat.ErrMatBadShape)

	_, err = qmat.NewDenseFromRows(nil)
	require.ErrorIs(t, err, qmat.ErrMatBadShape)
}

// TestDenseAtSet exercises the bounds-checked accessors: indices outside
// the matrix must return ErrMatOutOfRange, never panic.
func TestDenseAtSet(t *testing.T) {
	t.Parallel()

	m, err := qmat.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 5+1i))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5+1i, v)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err = m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, qmat.ErrMatOutOfRange)
		assert.ErrorIs(t, m.Set(idx[0], idx[1], 1), qmat.ErrMatOutOfRange)
	}
}

// TestDenseClone verifies deep-copy independence.
func TestDenseClone(t *testing.T) {
	t.Parallel()

	m, err := qmat.NewDenseFromRows([][]complex128{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 99))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), orig, "mutating the clone must not touch the original")
}

// TestIdentity checks the diagonal structure of Identity.
func TestIdentity(t *testing.T) {
	t.Parallel()

	id := qmat.Identity(4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, err := id.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, complex128(1), v)
			} else {
				assert.Equal(t, complex128(0), v)
			}
		}
	}

	assert.Panics(t, func() { qmat.Identity(0) })
}

// TestColumn covers NewColumn and the Column snapshot accessor.
func TestColumn(t *testing.T) {
	t.Parallel()

	v, err := qmat.NewColumn(1, 0, 1i)
	require.NoError(t, err)
	require.Equal(t, 3, v.Rows())
	require.Equal(t, 1, v.Cols())

	vals, err := v.Column()
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, 0, 1i}, vals)

	_, err = qmat.NewColumn()
	require.ErrorIs(t, err, qmat.ErrMatBadShape)

	sq, err := qmat.NewDense(2, 2)
	require.NoError(t, err)
	_, err = sq.Column()
	require.ErrorIs(t, err, qmat.ErrMatBadShape)
}
