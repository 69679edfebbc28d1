package operation_test

import (
	"fmt"

	"github.com/katalvlaran/qsim/operation"
)

// ExampleCNOT shows the target order and the 4×4 matrix.
func ExampleCNOT() {
	op := operation.CNOT(0, 1)
	fmt.Println(op)
	fmt.Print(op.Matrix())
	// Output:
	// cnot[0 1]
	// [(1+0i), (0+0i), (0+0i), (0+0i)]
	// [(0+0i), (0+0i), (0+0i), (1+0i)]
	// [(0+0i), (0+0i), (1+0i), (0+0i)]
	// [(0+0i), (1+0i), (0+0i), (0+0i)]
}

// ExampleLookup builds a gate from its catalog name.
func ExampleLookup() {
	g, ok := operation.Lookup("hadamard")
	fmt.Println(ok, g.Arity, g.Build(2))
	// Output:
	// true 1 hadamard[2]
}
