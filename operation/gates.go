// SPDX-License-Identifier: MIT

package operation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qsim/matrix"
)

// Gate names as accepted by Lookup.
const (
	NameIdentity = "identity"
	NameHadamard = "hadamard"
	NamePhase    = "phase"
	NameNot      = "not"
	NamePauliY   = "pauli-y"
	NamePauliZ   = "pauli-z"
	NameCNOT     = "cnot"
	NameSwap     = "swap"
)

// Gate describes a catalog entry: a name, the number of targets it takes and
// a constructor. Build does not validate targets; the register does.
type Gate struct {
	Name  string
	Arity int
	Build func(targets ...int) Operation
}

// fixed builds a k-target Operation from a literal matrix.
// Literal gate matrices are finite by construction, so errors are impossible.
func fixed(name string, rows [][]complex128, targets []int) Operation {
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		panic(fmt.Sprintf("operation: %s: %v", name, err))
	}

	return NewNamed(name, targets, m)
}

var invSqrt2 = complex(1/math.Sqrt2, 0)

// Identity is the 2×2 identity on target.
func Identity(target int) Operation {
	return fixed(NameIdentity, [][]complex128{
		{1, 0},
		{0, 1},
	}, []int{target})
}

// Hadamard is (1/√2)[[1,1],[1,-1]] on target.
func Hadamard(target int) Operation {
	return fixed(NameHadamard, [][]complex128{
		{invSqrt2, invSqrt2},
		{invSqrt2, -invSqrt2},
	}, []int{target})
}

// Phase is S = diag(1, i) on target.
func Phase(target int) Operation {
	return fixed(NamePhase, [][]complex128{
		{1, 0},
		{0, 1i},
	}, []int{target})
}

// Not is Pauli X on target.
func Not(target int) Operation {
	return fixed(NameNot, [][]complex128{
		{0, 1},
		{1, 0},
	}, []int{target})
}

// PauliY is [[0,-i],[i,0]] on target.
func PauliY(target int) Operation {
	return fixed(NamePauliY, [][]complex128{
		{0, -1i},
		{1i, 0},
	}, []int{target})
}

// PauliZ is diag(1, -1) on target.
func PauliZ(target int) Operation {
	return fixed(NamePauliZ, [][]complex128{
		{1, 0},
		{0, -1},
	}, []int{target})
}

// CNOT flips target when control is 1. The control is the first target.
func CNOT(control, target int) Operation {
	return fixed(NameCNOT, [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	}, []int{control, target})
}

// Swap exchanges the states of a and b.
func Swap(a, b int) Operation {
	return fixed(NameSwap, [][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}, []int{a, b})
}

func unary(name string, f func(int) Operation) Gate {
	return Gate{Name: name, Arity: 1, Build: func(t ...int) Operation {
		if len(t) != 1 {
			return NewNamed(name, t, f(0).m)
		}

		return f(t[0])
	}}
}

func binary(name string, f func(int, int) Operation) Gate {
	return Gate{Name: name, Arity: 2, Build: func(t ...int) Operation {
		if len(t) != 2 {
			return NewNamed(name, t, f(0, 1).m)
		}

		return f(t[0], t[1])
	}}
}

// gates lists the catalog in menu order.
var gates = []Gate{
	unary(NameIdentity, Identity),
	unary(NameHadamard, Hadamard),
	unary(NamePhase, Phase),
	unary(NameNot, Not),
	unary(NamePauliY, PauliY),
	unary(NamePauliZ, PauliZ),
	binary(NameCNOT, CNOT),
	binary(NameSwap, Swap),
}

var catalog = func() map[string]Gate {
	m := make(map[string]Gate, len(gates))
	for _, g := range gates {
		m[g.Name] = g
	}

	return m
}()

// Lookup finds a gate by its catalog name.
func Lookup(name string) (Gate, bool) {
	g, ok := catalog[name]

	return g, ok
}

// Unary lists the one-target gates in menu order.
func Unary() []Gate { return byArity(1) }

// Binary lists the two-target gates in menu order.
func Binary() []Gate { return byArity(2) }

func byArity(k int) []Gate {
	out := make([]Gate, 0, len(gates))
	for _, g := range gates {
		if g.Arity == k {
			out = append(out, g)
		}
	}

	return out
}
