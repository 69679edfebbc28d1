// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"

	"github.com/katalvlaran/qsim/amplitude"
	"github.com/katalvlaran/qsim/matrix"
)

// Qubit returns the 2×1 column for a classical bit.
func Qubit(bit bool) *matrix.Dense {
	v := []complex128{amplitude.One, amplitude.Zero}
	if bit {
		v = []complex128{amplitude.Zero, amplitude.One}
	}
	col, err := matrix.NewColumn(v)
	if err != nil {
		// A two-entry finite column cannot fail.
		panic(fmt.Sprintf("basis: Qubit: %v", err))
	}

	return col
}

// State folds bits into the 2^len(bits) basis state vector.
// An empty input yields the scalar state [1] (zero qubits).
//
// Complexity: O(2^N) time for the final product, O(2^N) space.
func State(bits []bool) []complex128 {
	acc, err := matrix.NewColumn([]complex128{amplitude.One})
	if err != nil {
		panic(fmt.Sprintf("basis: State: %v", err))
	}
	for _, b := range bits {
		acc, err = matrix.Tensor(Qubit(b), acc)
		if err != nil {
			panic(fmt.Sprintf("basis: State: %v", err))
		}
	}

	return acc.Flat()
}

// Index returns the basis index whose amplitude State(bits) sets to one.
func Index(bits []bool) int {
	idx := 0
	for i, b := range bits {
		if b {
			idx |= 1 << i
		}
	}

	return idx
}

// Bits is the inverse of Index for an n-qubit register.
func Bits(index, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = (index>>i)&1 == 1
	}

	return out
}
