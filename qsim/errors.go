// Package qsim: sentinel error set.
// Caller/usage errors are recoverable: they are returned before any state
// mutation, so a failed call leaves the register exactly as it was.
// ErrProbabilityLeak is the one fatal exception — it reports an invariant
// already broken upstream (e.g. a non-unitary gate was forced through), and
// the register contents are no longer trustworthy.

package qsim

import "errors"

var (
	// ErrInvalidQubitCount indicates a register size outside [1, MaxQubits].
	ErrInvalidQubitCount = errors.New("qsim: qubit count out of range")

	// ErrInvalidQubitList indicates a target list with a duplicate, an
	// out-of-range index, or no entries at all.
	ErrInvalidQubitList = errors.New("qsim: invalid qubit list")

	// ErrInvalidInitialState indicates an initial state of the wrong shape:
	// a non-column, a column of dimension != 2^n, a per-qubit list whose
	// length differs from the qubit count, or a zero-norm product.
	ErrInvalidInitialState = errors.New("qsim: invalid initial state")

	// ErrNotNormalized indicates an explicit initial state whose probability
	// mass deviates from 1 beyond the register's epsilon.
	ErrNotNormalized = errors.New("qsim: initial state not normalized")

	// ErrConflictingInit indicates that both WithInitialState and
	// WithQubitStates were supplied; exactly one initializer is allowed.
	ErrConflictingInit = errors.New("qsim: conflicting initializers")

	// ErrNilOperator indicates an operator with a nil matrix.
	ErrNilOperator = errors.New("qsim: operator has no matrix")

	// ErrOperatorNotSquare indicates a gate whose matrix is not square.
	ErrOperatorNotSquare = errors.New("qsim: operator is not square")

	// ErrQubitCountMismatch indicates that 2^len(targets) differs from the
	// operator's matrix dimension.
	ErrQubitCountMismatch = errors.New("qsim: operator dimension does not match qubit count")

	// ErrInvalidBasis indicates a measurement basis that is missing,
	// non-square, of the wrong dimension, or not orthonormal within epsilon.
	ErrInvalidBasis = errors.New("qsim: invalid measurement basis")

	// ErrProbabilityLeak is FATAL: the total measured probability deviates
	// from 1 beyond epsilon. It indicates a prior invariant violation and the
	// register state is left as-is (mid-measurement) for post-mortem only.
	ErrProbabilityLeak = errors.New("qsim: total probability deviates from 1")
)
