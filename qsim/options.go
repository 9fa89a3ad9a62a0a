// Package qsim: functional options for register construction, measurement
// and reporting.
//
// Contract (strict):
//   - Options are functional (Option func(*Options)).
//   - Option constructors VALIDATE and PANIC on nonsensical arguments
//     (programmer error); data-dependent problems — wrong state shape,
//     bad basis — surface later as sentinel errors, never panics.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through Options.

package qsim

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/quanta/qmat"
)

// MaxQubits caps the register size. 2^30 amplitudes already cost 16 GiB;
// anything above is a programming mistake, not a workload.
const MaxQubits = 30

// Option customizes register construction by mutating an Options instance
// before the state vector is built.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*Options)

// Options stores the effective register configuration after applying
// Option setters. Exactly one of initState / qubitStates may be set;
// neither means the |0…0⟩ default.
type Options struct {
	initState   *qmat.Dense   // explicit 2^n×1 column, or nil
	qubitStates []*qmat.Dense // n per-qubit 2×1 columns, or nil
	rng         *rand.Rand    // outcome sampler; nil ⇒ time-seeded in New
	eps         float64       // numeric tolerance; DefaultEpsilon by default
}

// DefaultOptions returns the Options baseline: |0…0⟩ initial state, a
// time-seeded RNG (materialized in New), and qmat.DefaultEpsilon.
func DefaultOptions() Options {
	return Options{eps: qmat.DefaultEpsilon}
}

// WithInitialState supplies an explicit initial state column of dimension
// 2^n. Shape and normalization are validated in New (ErrInvalidInitialState,
// ErrNotNormalized). Panics on nil — there is no meaningful nil state.
// Complexity: O(1); validation happens in New.
func WithInitialState(v *qmat.Dense) Option {
	if v == nil {
		panic("qsim: WithInitialState(nil)")
	}
	return func(o *Options) {
		o.initState = v
	}
}

// WithQubitStates supplies one single-qubit 2×1 column per qubit, combined
// as qubit n−1 ⊗ … ⊗ qubit 0 and then renormalized, so unnormalized
// per-qubit vectors are rescaled rather than rejected. Panics on an empty
// list or a nil entry; the length-vs-n check happens in New.
// Complexity: O(len(states)) for the nil scan.
func WithQubitStates(states ...*qmat.Dense) Option {
	if len(states) == 0 {
		panic("qsim: WithQubitStates() without states")
	}
	for _, s := range states {
		if s == nil {
			panic("qsim: WithQubitStates(nil state)")
		}
	}
	return func(o *Options) {
		o.qubitStates = states
	}
}

// WithRand provides an explicit RNG for outcome sampling.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("qsim: WithRand(nil)")
	}
	return func(o *Options) {
		o.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock measurement outcomes.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithEpsilon sets the numeric tolerance used by normalization checks,
// basis validation and the measurement probability-sum guard.
// Panics unless eps is finite and non-negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("qsim: WithEpsilon: eps must be finite, non-negative")
	}
	return func(o *Options) {
		o.eps = eps
	}
}

// MeasureOption customizes a single Measure call.
type MeasureOption func(*measureOptions)

// measureOptions holds per-measurement configuration; the zero value means
// "standard computational basis".
type measureOptions struct {
	basis    qmat.Basis // optional orthonormal basis; zero value ⇒ standard
	hasBasis bool
}

// WithBasis measures in the supplied orthonormal basis instead of the
// standard one. The basis is validated inside Measure (square, dimension
// 2^k, orthonormal rows) and rejected with ErrInvalidBasis before any state
// mutation — an invalid basis is caller data, not a programmer error.
// Complexity: O(1); validation happens in Measure.
func WithBasis(b qmat.Basis) MeasureOption {
	return func(o *measureOptions) {
		o.basis = b
		o.hasBasis = true
	}
}

// ReportOption customizes Register.Report output.
type ReportOption func(*reportOptions)

type reportOptions struct {
	header    string // optional first line
	showZeros bool   // include near-zero amplitudes
}

// WithHeader prepends a header line to the report.
func WithHeader(h string) ReportOption {
	return func(o *reportOptions) {
		o.header = h
	}
}

// WithZeros includes amplitudes whose modulus is below epsilon; by default
// such lines are elided to keep large-register dumps readable.
func WithZeros() ReportOption {
	return func(o *reportOptions) {
		o.showZeros = true
	}
}
