// Package qmat: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for shape and numeric-policy checks.
//   - Keep kernels and the qsim engine minimal by delegating here.
//   - Return plain sentinel errors (wrapped with a validator tag) so call
//     sites can match with errors.Is and wrap further.
//
// All checks are pure and deterministic; tolerance is always explicit.

package qmat

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrMatNil, ErrMatNotSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrMatNil)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrMatNotSquare)
	}

	return nil
}

// ValidateUnitary checks m·m† ≈ I within eps: off-diagonal moduli must not
// exceed eps and diagonal entries must sit within eps of 1.
// Errors: ErrMatNil, ErrMatNotSquare, ErrMatNotUnitary.
// Complexity: O(d³) dominated by the product.
func ValidateUnitary(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateUnitary", err)
	}

	dag, err := Dagger(m)
	if err != nil {
		return validatorErrorf("ValidateUnitary", err)
	}
	prod, err := Mul(m, dag)
	if err != nil {
		return validatorErrorf("ValidateUnitary", err)
	}
	if !nearIdentity(prod, eps) {
		return validatorErrorf("ValidateUnitary", ErrMatNotUnitary)
	}

	return nil
}

// ValidateOrthonormal checks that the ROWS of m are pairwise orthonormal:
// m·mᵀ ≈ I within eps. Note the plain transpose — this is the exact
// real-inner-product check the measurement contract specifies for bases,
// deliberately distinct from the unitarity (dagger) check.
// Errors: ErrMatNil, ErrMatNotSquare, ErrMatNotOrthonormal.
// Complexity: O(d³).
func ValidateOrthonormal(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateOrthonormal", err)
	}

	// Plain transpose, no conjugation.
	trp := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			trp.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}
	prod, err := Mul(m, trp)
	if err != nil {
		return validatorErrorf("ValidateOrthonormal", err)
	}
	if !nearIdentity(prod, eps) {
		return validatorErrorf("ValidateOrthonormal", ErrMatNotOrthonormal)
	}

	return nil
}

// ValidateNormalized checks that a column state has probability mass
// Σ|amplitude|² within eps of 1.
// Errors: ErrMatNil, ErrMatBadShape for a non-column, ErrMatNotNormalized.
// Complexity: O(n).
func ValidateNormalized(v *Dense, eps float64) error {
	if v == nil {
		return validatorErrorf("ValidateNormalized", ErrMatNil)
	}
	if v.c != 1 {
		return validatorErrorf("ValidateNormalized", ErrMatBadShape)
	}

	probs := make([]float64, v.r)
	for i, amp := range v.data {
		probs[i] = real(amp)*real(amp) + imag(amp)*imag(amp)
	}
	if !scalar.EqualWithinAbs(floats.Sum(probs), 1.0, eps) {
		return validatorErrorf("ValidateNormalized", ErrMatNotNormalized)
	}

	return nil
}

// ValidatePowerOfTwoDim checks that m is square with dimension 2^k, k ≥ 0.
// Catalogue matrices entering the engine must pass this boundary check.
// Errors: ErrMatNil, ErrMatNotSquare, ErrMatBadShape.
// Complexity: O(1).
func ValidatePowerOfTwoDim(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidatePowerOfTwoDim", err)
	}
	d := m.r
	if d&(d-1) != 0 {
		return validatorErrorf("ValidatePowerOfTwoDim", ErrMatBadShape)
	}

	return nil
}

// nearIdentity reports whether every entry of a square matrix sits within
// eps of the identity's corresponding entry (modulus of the deviation).
// Complexity: O(d²).
func nearIdentity(m *Dense, eps float64) bool {
	var want complex128
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if cmplx.Abs(m.data[i*m.c+j]-want) > eps {
				return false
			}
		}
	}

	return true
}
