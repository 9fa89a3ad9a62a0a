// Package qmat: Dense is a concrete, row-major complex matrix, storing
// elements in a flat slice for performance and cache friendliness.

package qmat

import (
	"fmt"
	"strings"
)

// DefaultEpsilon is the package-wide numeric tolerance used by validators
// and algebra predicates when the caller has no stricter policy.
const DefaultEpsilon = 1e-6

// Dense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrMatBadShape unless rows > 0 and cols > 0.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrMatBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from a rectangular 2-D slice.
// Returns ErrMatBadShape for empty or ragged input.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrMatBadShape
	}
	c := len(rows[0])
	m := &Dense{r: len(rows), c: c, data: make([]complex128, len(rows)*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrMatBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewColumn builds an n×1 column vector from the given values.
// Returns ErrMatBadShape for empty input.
// Complexity: O(n).
func NewColumn(values ...complex128) (*Dense, error) {
	if len(values) == 0 {
		return nil, ErrMatBadShape
	}
	m := &Dense{r: len(values), c: 1, data: make([]complex128, len(values))}
	copy(m.data, values)

	return m, nil
}

// Identity returns the n×n identity matrix.
// Panics only on n <= 0 (programmer error; sizes here are always 2^k).
// Complexity: O(n²).
func Identity(n int) *Dense {
	if n <= 0 {
		panic("qmat: Identity(n<=0)")
	}
	m := &Dense{r: n, c: n, data: make([]complex128, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrMatOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrMatOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrMatOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrMatOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrMatOutOfRange on invalid indices.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Column returns row-major copies of an n×1 matrix's entries.
// Returns ErrMatBadShape if the receiver is not a column.
// Complexity: O(n).
func (m *Dense) Column() ([]complex128, error) {
	if m.c != 1 {
		return nil, fmt.Errorf("Dense.Column: %dx%d is not a column: %w", m.r, m.c, ErrMatBadShape)
	}
	out := make([]complex128, m.r)
	copy(out, m.data)

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%.4g", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
