// Package basis builds classical basis states for a qubit register.
//
// A single classical bit maps to a 2×1 column: false → |0⟩ = [1 0]ᵀ and
// true → |1⟩ = [0 1]ᵀ. A sequence of bits is folded into the full 2^N state by
// repeated Kronecker products, each new bit's column on the LEFT of the
// accumulator:
//
//	state = q[N-1] ⊗ … ⊗ q[1] ⊗ q[0]
//
// so input bit i lands on index bit i (bit 0 is the least significant).
// Worked example: State([]bool{true, false}) = [0 1 0 0]ᵀ, i.e. index 0b01:
// qubit 0 is 1 and qubit 1 is 0.
package basis
