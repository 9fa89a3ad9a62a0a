// Package qsim: Register construction and gate application.

package qsim

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"math/rand"
	"strings"
	"time"

	"github.com/katalvlaran/quanta/qmat"
)

// Register is one simulation session: the amplitude vector of an n-qubit
// system plus its numeric policy and RNG. It is the single mutable resource
// of the engine, mutated exclusively through Apply and Measure, and owned
// by exactly one caller — no internal locking.
type Register struct {
	n     int          // qubit count
	state []complex128 // 2^n amplitudes, index-addressed (qubit 0 = LSB)
	steps int          // applied operations, diagnostics only
	rng   *rand.Rand   // outcome sampler
	eps   float64      // numeric tolerance
}

// New creates an n-qubit register. With no initializer option the register
// starts in |0…0⟩ (amplitude 1 at index 0). WithInitialState supplies an
// explicit normalized 2^n column; WithQubitStates supplies n single-qubit
// columns combined qubit n−1 ⊗ … ⊗ qubit 0 and renormalized.
//
// Errors:
//   - ErrInvalidQubitCount: n outside [1, MaxQubits].
//   - ErrConflictingInit: both initializer options supplied.
//   - ErrInvalidInitialState: wrong column shape, wrong per-qubit list
//     length, non-2×1 per-qubit column, or a zero-norm product.
//   - ErrNotNormalized: explicit state with probability mass off 1.
//
// Complexity: O(2^n) (per-qubit products cost O(n·2^n)).
func New(n int, opts ...Option) (*Register, error) {
	if n < 1 || n > MaxQubits {
		return nil, fmt.Errorf("New(%d): want 1..%d qubits: %w", n, MaxQubits, ErrInvalidQubitCount)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.initState != nil && cfg.qubitStates != nil {
		return nil, fmt.Errorf("New: %w", ErrConflictingInit)
	}

	r := &Register{
		n:   n,
		rng: cfg.rng,
		eps: cfg.eps,
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	var err error
	switch {
	case cfg.initState != nil:
		if r.state, err = explicitState(n, cfg.initState, cfg.eps); err != nil {
			return nil, err
		}
	case cfg.qubitStates != nil:
		if r.state, err = productState(n, cfg.qubitStates); err != nil {
			return nil, err
		}
	default:
		r.state = make([]complex128, 1<<uint(n))
		r.state[0] = 1
	}

	return r, nil
}

// explicitState validates and copies a caller-supplied 2^n×1 column.
func explicitState(n int, v *qmat.Dense, eps float64) ([]complex128, error) {
	if v.Rows() != 1<<uint(n) || v.Cols() != 1 {
		return nil, fmt.Errorf("New: initial state is %dx%d, want %dx1: %w",
			v.Rows(), v.Cols(), 1<<uint(n), ErrInvalidInitialState)
	}
	if err := qmat.ValidateNormalized(v, eps); err != nil {
		return nil, fmt.Errorf("New: %w", ErrNotNormalized)
	}

	return v.Column()
}

// productState combines n per-qubit columns by tensor product in order
// qubit n−1 ⊗ … ⊗ qubit 0, then renormalizes the combined vector. This
// deliberately rescales unnormalized per-qubit inputs instead of rejecting
// them; only a zero-norm product is an error.
func productState(n int, qubits []*qmat.Dense) ([]complex128, error) {
	if len(qubits) != n {
		return nil, fmt.Errorf("New: %d per-qubit states for %d qubits: %w", len(qubits), n, ErrInvalidInitialState)
	}
	for q, v := range qubits {
		if v.Rows() != 2 || v.Cols() != 1 {
			return nil, fmt.Errorf("New: qubit %d state is %dx%d, want 2x1: %w",
				q, v.Rows(), v.Cols(), ErrInvalidInitialState)
		}
	}

	// MSB leftmost: start at qubit n−1 and tensor downwards.
	prep := qubits[n-1]
	var err error
	for q := n - 2; q >= 0; q-- {
		if prep, err = qmat.Kron(prep, qubits[q]); err != nil {
			return nil, fmt.Errorf("New: %w", err)
		}
	}
	state, err := prep.Column()
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	var mass float64
	for _, amp := range state {
		mass += real(amp)*real(amp) + imag(amp)*imag(amp)
	}
	if mass == 0 {
		return nil, fmt.Errorf("New: zero-norm product state: %w", ErrInvalidInitialState)
	}
	scale := complex(1/math.Sqrt(mass), 0)
	for i := range state {
		state[i] *= scale
	}

	return state, nil
}

// QubitCount returns the number of qubits in the register.
// Complexity: O(1).
func (r *Register) QubitCount() int { return r.n }

// StepCount returns how many operations (gates and measurements) have been
// applied so far; diagnostics only.
// Complexity: O(1).
func (r *Register) StepCount() int { return r.steps }

// Amplitudes returns a read-only snapshot (defensive copy) of the current
// amplitude vector. Simulator-only introspection: there is no hardware
// analogue of reading amplitudes.
// Complexity: O(2^n).
func (r *Register) Amplitudes() []complex128 {
	out := make([]complex128, len(r.state))
	copy(out, r.state)

	return out
}

// Apply left-multiplies the state by op relocated onto the target qubits:
// targets[0] maps to the operator's most significant block. Validation is
// strictly before mutation — a failed Apply leaves the state untouched.
//
// Errors: ErrNilOperator, ErrInvalidQubitList, ErrOperatorNotSquare,
// ErrQubitCountMismatch.
// Complexity: O(4^n) time, O(4^n) transient space for the stretched matrix.
func (r *Register) Apply(op qmat.Operator, targets ...int) error {
	if op.Mat == nil {
		return fmt.Errorf("Apply: operator %q: %w", op.Name, ErrNilOperator)
	}
	if err := r.validateTargets(targets); err != nil {
		return fmt.Errorf("Apply %q: %w", op.Name, err)
	}

	full, err := r.stretched(op, targets)
	if err != nil {
		return fmt.Errorf("Apply %q: %w", op.Name, err)
	}
	next, err := qmat.MulVec(full, r.state)
	if err != nil {
		return fmt.Errorf("Apply %q: %w", op.Name, err)
	}

	r.state = next
	r.steps++

	return nil
}

// validateTargets rejects empty lists, out-of-range indices and duplicates.
// Complexity: O(len(targets)).
func (r *Register) validateTargets(targets []int) error {
	if len(targets) == 0 || len(targets) > r.n {
		return fmt.Errorf("%d targets for %d qubits: %w", len(targets), r.n, ErrInvalidQubitList)
	}
	seen := make([]bool, r.n)
	for _, q := range targets {
		if q < 0 || q >= r.n {
			return fmt.Errorf("qubit %d outside [0,%d): %w", q, r.n, ErrInvalidQubitList)
		}
		if seen[q] {
			return fmt.Errorf("qubit %d repeated: %w", q, ErrInvalidQubitList)
		}
		seen[q] = true
	}

	return nil
}

// Report writes a human-readable amplitude dump: one line per basis state,
// the index in n-bit binary followed by the amplitude. Near-zero lines are
// elided unless WithZeros is supplied. Simulator-only diagnostics.
// Complexity: O(2^n).
func (r *Register) Report(w io.Writer, opts ...ReportOption) error {
	var cfg reportOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.header != "" {
		if _, err := fmt.Fprintln(w, cfg.header); err != nil {
			return err
		}
	}
	for i, amp := range r.state {
		if !cfg.showZeros && cmplx.Abs(amp) <= r.eps {
			continue
		}
		if _, err := fmt.Fprintf(w, "%0*b    %.8f\n", r.n, i, amp); err != nil {
			return err
		}
	}

	return nil
}

// String implements fmt.Stringer via Report with default options.
func (r *Register) String() string {
	var b strings.Builder
	_ = r.Report(&b)

	return b.String()
}
