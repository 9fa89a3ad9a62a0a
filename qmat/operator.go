// Package qmat: Operator and Basis value types plus the composition
// algebra over them. An operator is a display name and a square complex
// matrix — data, not behavior. Composition helpers build new operators;
// they never modify their inputs.

package qmat

import "fmt"

// Operator is an immutable (name, matrix) pair. The matrix dimension is
// 2^k for a k-qubit gate; unitarity is checked on demand via IsUnitary,
// not enforced at construction.
type Operator struct {
	Name string // human-readable label, used only for display
	Mat  *Dense // square complex matrix, dimension 2^k
}

// Basis is an orthonormal reference frame for measurement: a name and a
// square matrix whose rows are pairwise orthonormal. It shares the shape
// of Operator but carries a distinct meaning, so it gets a distinct type.
type Basis struct {
	Name string
	Mat  *Dense
}

// Dim returns the operator's matrix dimension (rows), or 0 for a nil matrix.
// Complexity: O(1).
func (op Operator) Dim() int {
	if op.Mat == nil {
		return 0
	}

	return op.Mat.Rows()
}

// Dim returns the basis matrix dimension (rows), or 0 for a nil matrix.
// Complexity: O(1).
func (b Basis) Dim() int {
	if b.Mat == nil {
		return 0
	}

	return b.Mat.Rows()
}

// Compose builds the sequential composition of ops under the given name.
// The FIRST listed operator is applied to the state first, so it is the
// rightmost factor of the resulting matrix product:
//
//	Compose("U", a, b, c).Mat == c·b·a
//
// Errors:
//   - ErrMatNil if no operators or a nil matrix are supplied.
//   - ErrMatNotSquare if any operator is non-square.
//   - ErrMatDimensionMismatch if any operator's dimension differs from the
//     first one's.
//
// Complexity: O(len(ops) * d³) for dimension d.
func Compose(name string, ops ...Operator) (Operator, error) {
	if len(ops) == 0 {
		return Operator{}, fmt.Errorf("Compose(%s): no operators: %w", name, ErrMatNil)
	}
	if ops[0].Mat == nil {
		return Operator{}, fmt.Errorf("Compose(%s): operator %q: %w", name, ops[0].Name, ErrMatNil)
	}

	d := ops[0].Dim()
	res := Identity(d)
	var err error
	for _, op := range ops {
		if op.Mat == nil {
			return Operator{}, fmt.Errorf("Compose(%s): operator %q: %w", name, op.Name, ErrMatNil)
		}
		if err = ValidateSquare(op.Mat); err != nil {
			return Operator{}, fmt.Errorf("Compose(%s): operator %q: %w", name, op.Name, err)
		}
		if op.Dim() != d {
			return Operator{}, fmt.Errorf("Compose(%s): operator %q is %d-dimensional, want %d: %w",
				name, op.Name, op.Dim(), d, ErrMatDimensionMismatch)
		}
		// Left-multiply: later operators stack on the left.
		if res, err = Mul(op.Mat, res); err != nil {
			return Operator{}, fmt.Errorf("Compose(%s): %w", name, err)
		}
	}

	return Operator{Name: name, Mat: res}, nil
}

// Tensor builds the parallel composition of ops under the given name.
// Operators are tensored in list order; the FIRST listed occupies the
// highest-order block of the result.
// Errors: ErrMatNil if no operators or a nil matrix are supplied.
// Complexity: O(D²) for the final dimension D = Π dims.
func Tensor(name string, ops ...Operator) (Operator, error) {
	if len(ops) == 0 {
		return Operator{}, fmt.Errorf("Tensor(%s): no operators: %w", name, ErrMatNil)
	}

	var (
		res *Dense
		err error
	)
	for _, op := range ops {
		if op.Mat == nil {
			return Operator{}, fmt.Errorf("Tensor(%s): operator %q: %w", name, op.Name, ErrMatNil)
		}
		if res == nil {
			res = op.Mat.Clone()
			continue
		}
		if res, err = Kron(res, op.Mat); err != nil {
			return Operator{}, fmt.Errorf("Tensor(%s): %w", name, err)
		}
	}

	return Operator{Name: name, Mat: res}, nil
}

// Inverse returns the conjugate transpose of op, named "INV-<name>".
// For a unitary operator this is its inverse; unitarity of the input is
// NOT verified here (use IsUnitary when it matters).
// Errors: ErrMatNil on a nil matrix.
// Complexity: O(d²).
func Inverse(op Operator) (Operator, error) {
	if op.Mat == nil {
		return Operator{}, fmt.Errorf("Inverse: operator %q: %w", op.Name, ErrMatNil)
	}
	inv, err := Dagger(op.Mat)
	if err != nil {
		return Operator{}, fmt.Errorf("Inverse(%s): %w", op.Name, err)
	}

	return Operator{Name: "INV-" + op.Name, Mat: inv}, nil
}

// IsUnitary reports whether op·op† ≈ I within eps. A non-square or nil
// operator is simply not unitary — no error is returned, matching the
// predicate contract.
// Complexity: O(d³) dominated by the product.
func IsUnitary(op Operator, eps float64) bool {
	if op.Mat == nil {
		return false
	}

	return ValidateUnitary(op.Mat, eps) == nil
}
