// Package qsim: operator embedding.
//
// A k-qubit operator is defined for "the first k qubits in a fixed order".
// Embedding relocates it: tensor with identity up to full dimension (the
// operator takes the high-order block, the identity covers the remaining
// qubits in descending original-index order), then conjugate by the
// permutation pair for the target list. The conjugated matrix acts on the
// original qubit indices regardless of order or adjacency. The same
// mechanism serves gate stretching and measurement basis relocation.

package qsim

import (
	"fmt"

	"github.com/katalvlaran/quanta/qmat"
)

// stretched returns the full 2^n-size matrix of op acting on the target
// qubits. Pure with respect to the register: only r.n is read.
// Precondition: targets already validated.
//
// Errors: ErrOperatorNotSquare, ErrQubitCountMismatch.
// Complexity: O(4^n) time and space.
func (r *Register) stretched(op qmat.Operator, targets []int) (*qmat.Dense, error) {
	if err := qmat.ValidateSquare(op.Mat); err != nil {
		return nil, fmt.Errorf("operator is %dx%d: %w", op.Mat.Rows(), op.Mat.Cols(), ErrOperatorNotSquare)
	}
	k := len(targets)
	if op.Mat.Rows() != 1<<uint(k) {
		return nil, fmt.Errorf("operator dimension %d for %d target qubits: %w",
			op.Mat.Rows(), k, ErrQubitCountMismatch)
	}

	// Identity fills the low block: the untouched qubits, descending order.
	expanded, err := qmat.Kron(op.Mat, qmat.Identity(1<<uint(r.n-k)))
	if err != nil {
		return nil, err
	}

	// Conjugation by the permutation pair relocates the block structure onto
	// the requested qubits: inverse · expanded · forward.
	pair := newPermPair(r.n, targets)

	return qmat.PermuteSymmetric(expanded, pair.fwd)
}

// Stretch returns op embedded into this register's full dimension as a
// named operator, e.g. "8Q-PAULI_X[2]". The result composes and inverts
// like any other operator; Apply-ing it to all qubits in descending order
// reproduces Apply(op, targets...).
//
// Errors: ErrNilOperator, ErrInvalidQubitList, ErrOperatorNotSquare,
// ErrQubitCountMismatch.
// Complexity: O(4^n).
func (r *Register) Stretch(op qmat.Operator, targets ...int) (qmat.Operator, error) {
	if op.Mat == nil {
		return qmat.Operator{}, fmt.Errorf("Stretch: operator %q: %w", op.Name, ErrNilOperator)
	}
	if err := r.validateTargets(targets); err != nil {
		return qmat.Operator{}, fmt.Errorf("Stretch %q: %w", op.Name, err)
	}

	full, err := r.stretched(op, targets)
	if err != nil {
		return qmat.Operator{}, fmt.Errorf("Stretch %q: %w", op.Name, err)
	}

	return qmat.Operator{
		Name: fmt.Sprintf("%dQ-%s%v", r.n, op.Name, targets),
		Mat:  full,
	}, nil
}
