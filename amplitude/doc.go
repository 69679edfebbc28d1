// Package amplitude holds the scalar arithmetic used on state-vector entries.
//
// An amplitude is a plain complex128: addition and multiplication are the
// builtin operators, so this package only adds what the builtins lack:
//
//   - Conj      — complex conjugate.
//   - NormSqr   — squared magnitude |a|², the probability weight of a basis state.
//   - DivReal   — division by a real scalar (renormalization).
//   - Close     — element comparison under an absolute tolerance.
//
// All functions are pure and allocation-free.
package amplitude
