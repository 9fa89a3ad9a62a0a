// Package qmat provides the complex linear-algebra substrate for the
// quanta simulator.
//
// The qmat package provides:
//
//   - Dense, a row-major complex128 matrix with bounds-checked accessors.
//   - Kernels: Mul (matrix product), MulVec (matrix×column), Kron (tensor
//     product), Dagger (conjugate transpose), Scale.
//   - Operator and Basis value types: a display name plus an immutable
//     square matrix. Operators are data, not behavior.
//   - Algebra on operators: Compose (sequential), Tensor (parallel),
//     Inverse (conjugate transpose), IsUnitary.
//   - Validators: square shape, unitarity, row orthonormality, state
//     normalization — pure predicates returning sentinel errors.
//
// All checks compare against an explicit tolerance; DefaultEpsilon (1e-6)
// is the package-wide default. Matrices are value-like: nothing in this
// package mutates its inputs.
package qmat
