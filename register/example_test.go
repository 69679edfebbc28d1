package register_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qsim/operation"
	"github.com/katalvlaran/qsim/register"
)

// ExampleRegister_Apply builds a Bell pair and measures both halves.
func ExampleRegister_Apply() {
	r := register.New([]bool{false, false}, register.WithSource(fixedSource(0.75)))
	r.Apply(operation.Hadamard(0)).Apply(operation.CNOT(0, 1))

	fmt.Println(r.Measure(0), r.Measure(1))
	// Output:
	// true true
}

// ExampleRegister_TryApply shows structured error handling.
func ExampleRegister_TryApply() {
	r := register.New([]bool{true, false})
	_, err := r.TryApply(operation.CNOT(1, 2))

	var opErr *register.OperationError
	if errors.As(err, &opErr) {
		fmt.Println(opErr.Kind, opErr.Index, errors.Is(err, register.ErrInvalidTarget))
	}
	fmt.Println(err)
	// Output:
	// InvalidTarget 2 true
	// register: invalid target: 2
}
