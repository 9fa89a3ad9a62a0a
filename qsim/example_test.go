package qsim_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/quanta/gates"
	"github.com/katalvlaran/quanta/qsim"
)

// ExampleRegister_Report prepares a Bell pair and dumps the nonzero
// amplitudes.
func ExampleRegister_Report() {
	r, _ := qsim.New(2, qsim.WithSeed(1))
	_ = r.Apply(gates.H(), 0)
	_ = r.Apply(gates.CNOT(), 0, 1)

	_ = r.Report(os.Stdout, qsim.WithHeader("bell pair"))
	// Output:
	// bell pair
	// 00    (0.70710678+0.00000000i)
	// 11    (0.70710678+0.00000000i)
}

// ExampleRegister_Measure measures |+⟩ in the |+⟩/|−⟩ basis — the one
// measurement whose outcome is certain.
func ExampleRegister_Measure() {
	r, _ := qsim.New(1, qsim.WithSeed(1))
	_ = r.Apply(gates.H(), 0)

	bits, p, _ := r.Measure([]int{0}, qsim.WithBasis(gates.HadamardBasis()))
	fmt.Printf("bits=%v p=%.2f\n", bits, p)
	// Output:
	// bits=[0] p=1.00
}

// ExampleRegister_Stretch embeds a one-qubit gate into a three-qubit
// register as a reusable named operator.
func ExampleRegister_Stretch() {
	r, _ := qsim.New(3)
	op, _ := r.Stretch(gates.X(), 1)

	fmt.Println(op.Name, op.Dim())
	// Output:
	// 3Q-PAULI_X[1] 8
}
