// Package qsim: projective measurement.
//
// The sequence below must run in exactly this order — permutation, basis
// change and collapse are non-commuting transforms, and undoing them out of
// order corrupts the state:
//
//	validate → permute forward → basis change → bucket probabilities →
//	probability-sum guard → sample → collapse & renormalize →
//	inverse basis → inverse permutation.

package qsim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/quanta/qmat"
)

// Measure performs a projective measurement of the target qubits, by
// default in the standard computational basis, or in a caller-supplied
// orthonormal basis via WithBasis. It returns the measured bit values in
// the order of targets (targets[0] first) and, for diagnostics, the
// probability of the selected outcome. The register state collapses to the
// outcome subspace and is renormalized in place.
//
// Errors:
//   - ErrInvalidQubitList, ErrInvalidBasis: caller errors, returned before
//     any state mutation.
//   - ErrProbabilityLeak: FATAL internal-consistency failure — the bucketed
//     probabilities do not sum to 1 within epsilon, meaning an invariant was
//     already broken upstream (e.g. a non-unitary operator was applied). The
//     state is left mid-transform for post-mortem inspection only.
//
// Complexity: O(2^n) without a basis; O(4^n) with one (two dense products).
func (r *Register) Measure(targets []int, opts ...MeasureOption) ([]int, float64, error) {
	var cfg measureOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate everything BEFORE touching the state.
	if err := r.validateTargets(targets); err != nil {
		return nil, 0, fmt.Errorf("Measure: %w", err)
	}
	k := len(targets)
	if cfg.hasBasis {
		if err := r.validateBasis(cfg.basis, k); err != nil {
			return nil, 0, err
		}
	}

	// 2) Relocate the measured qubits into the top k bit positions.
	pair := newPermPair(r.n, targets)
	st := pair.forward(r.state)

	// 3) Rotate the measured block into the requested basis.
	var err error
	if cfg.hasBasis {
		if st, err = applyBasis(cfg.basis.Mat, st, r.n, k); err != nil {
			return nil, 0, fmt.Errorf("Measure: %w", err)
		}
	}

	// 4) Aggregate |amplitude|² into 2^k outcome buckets keyed by the top-k
	// bits of each amplitude index.
	shift := uint(r.n - k)
	var mask int
	for b := 0; b < k; b++ {
		mask |= 1 << uint(r.n-b-1)
	}
	probs := make([]float64, 1<<uint(k))
	for i, amp := range st {
		probs[(i&mask)>>shift] += real(amp)*real(amp) + imag(amp)*imag(amp)
	}

	// 5) Internal-consistency guard: the buckets must exhaust the state.
	if total := floats.Sum(probs); !scalar.EqualWithinAbs(total, 1.0, r.eps) {
		return nil, 0, fmt.Errorf("Measure: total probability %.9f: %w", total, ErrProbabilityLeak)
	}

	// 6) Sample one outcome: scan buckets in index order and keep the one
	// whose half-open interval (cum, cum+p] contains the toss; if drift
	// leaves the toss outside every interval, the last bucket wins. The scan
	// deliberately runs the full range — this exact rule is what makes runs
	// bit-for-bit reproducible against a fixed random source.
	toss := r.rng.Float64()
	sel := len(probs) - 1
	var cum float64
	for i, p := range probs {
		if toss > cum && toss <= cum+p {
			sel = i
		}
		cum += p
	}
	outcomeProb := probs[sel]

	// 7) Decode the bucket into bit values, most significant first, matching
	// the order of targets.
	bits := make([]int, 0, k)
	for i := k - 1; i >= 0; i-- {
		bits = append(bits, (sel>>uint(i))&1)
	}

	// 8) Collapse: zero every amplitude outside the selected bucket and
	// rescale the survivors by 1/√p.
	toMatch := sel << shift
	scale := complex(1/math.Sqrt(outcomeProb), 0)
	for i := range st {
		if i&mask == toMatch {
			st[i] *= scale
		} else {
			st[i] = 0
		}
	}

	// 9) Undo the basis rotation with its conjugate transpose.
	if cfg.hasBasis {
		inv, dErr := qmat.Dagger(cfg.basis.Mat)
		if dErr != nil {
			return nil, 0, fmt.Errorf("Measure: %w", dErr)
		}
		if st, err = applyBasis(inv, st, r.n, k); err != nil {
			return nil, 0, fmt.Errorf("Measure: %w", err)
		}
	}

	// 10) Undo the permutation and commit.
	r.state = pair.inverse(st)
	r.steps++

	return bits, outcomeProb, nil
}

// validateBasis rejects a basis that is missing, non-square, of the wrong
// dimension for k measured qubits, or whose rows are not orthonormal.
// All failures wrap ErrInvalidBasis.
// Complexity: O(8^k) for the orthonormality product.
func (r *Register) validateBasis(b qmat.Basis, k int) error {
	if b.Mat == nil {
		return fmt.Errorf("Measure: basis %q has no matrix: %w", b.Name, ErrInvalidBasis)
	}
	if err := qmat.ValidateSquare(b.Mat); err != nil {
		return fmt.Errorf("Measure: basis %q: %w", b.Name, ErrInvalidBasis)
	}
	if b.Mat.Rows() != 1<<uint(k) {
		return fmt.Errorf("Measure: basis %q dimension %d for %d qubits: %w",
			b.Name, b.Mat.Rows(), k, ErrInvalidBasis)
	}
	if err := qmat.ValidateOrthonormal(b.Mat, r.eps); err != nil {
		return fmt.Errorf("Measure: basis %q: %w", b.Name, ErrInvalidBasis)
	}

	return nil
}

// applyBasis multiplies the (already permuted) state by basis ⊗ I(2^(n−k)),
// rotating only the top-k measured block.
// Complexity: O(4^n).
func applyBasis(basis *qmat.Dense, st []complex128, n, k int) ([]complex128, error) {
	full, err := qmat.Kron(basis, qmat.Identity(1<<uint(n-k)))
	if err != nil {
		return nil, err
	}

	return qmat.MulVec(full, st)
}
