// Package qmat: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the qmat
// package. All kernels and validators return these sentinels and tests check
// them via errors.Is. No routine panics on user-triggered error conditions.

package qmat

import "errors"

var (
	// ErrMatBadShape is returned when a requested shape is invalid
	// (e.g., rows <= 0 or cols <= 0, or ragged row input).
	ErrMatBadShape = errors.New("qmat: invalid shape")

	// ErrMatOutOfRange indicates that a row or column index is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrMatOutOfRange = errors.New("qmat: index out of range")

	// ErrMatDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols != b.Rows, or Compose over operators
	// of different dimension.
	ErrMatDimensionMismatch = errors.New("qmat: dimension mismatch")

	// ErrMatNotSquare signals that a square matrix was required but the
	// input wasn't.
	ErrMatNotSquare = errors.New("qmat: matrix is not square")

	// ErrMatNotUnitary signals that m·m† deviates from identity beyond the
	// configured tolerance.
	ErrMatNotUnitary = errors.New("qmat: matrix is not unitary within eps")

	// ErrMatNotOrthonormal signals that the rows of a basis matrix are not
	// pairwise orthonormal within the configured tolerance.
	ErrMatNotOrthonormal = errors.New("qmat: rows are not orthonormal within eps")

	// ErrMatNotNormalized signals that a state column's probability mass
	// Σ|amplitude|² deviates from 1 beyond the configured tolerance.
	ErrMatNotNormalized = errors.New("qmat: state is not normalized within eps")

	// ErrMatNil indicates that a nil *Dense (receiver or argument) was used.
	ErrMatNil = errors.New("qmat: nil matrix")

	// ErrMatBadPermutation indicates an index slice that is not a bijection
	// of [0, d) where d is the matrix dimension.
	ErrMatBadPermutation = errors.New("qmat: not a permutation")
)
