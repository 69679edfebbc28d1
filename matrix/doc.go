// Package matrix provides dense complex-valued linear algebra for state-vector
// simulation.
//
// The matrix package provides:
//
//   - Dense: a row-major complex128 matrix with bounds-checked At/Set and an
//     optional NaN/Inf guard (WithNoValidateNaNInf disables it).
//   - Kernels: Mul, MatVec, Kron (tensor product), KronIdentityMatVec
//     (block-diagonal I⊗M applied to a vector), Adjoint, Scale.
//   - Comparisons: AllClose and IsUnitary under an explicit tolerance.
//   - Validators shared by all kernels, returning the sentinels in errors.go.
//
// Matrices are small here: gate matrices are 2^k×2^k for k target qubits and
// state vectors are 2^N×1 columns. Every kernel allocates its result and never
// mutates its operands.
package matrix
