// SPDX-License-Identifier: MIT

package amplitude

import (
	"math"
	"math/cmplx"
)

// One and Zero are the amplitudes of a definite basis state.
const (
	One  complex128 = 1
	Zero complex128 = 0
)

// Conj returns the complex conjugate of a.
func Conj(a complex128) complex128 { return cmplx.Conj(a) }

// NormSqr returns |a|² = re² + im².
// Computed directly instead of squaring cmplx.Abs, which would take a sqrt
// only to undo it.
// Complexity: O(1).
func NormSqr(a complex128) float64 {
	re, im := real(a), imag(a)

	return re*re + im*im
}

// DivReal divides a by the real scalar s.
// The caller guarantees s != 0; division by zero follows IEEE-754 (Inf/NaN).
func DivReal(a complex128, s float64) complex128 {
	return complex(real(a)/s, imag(a)/s)
}

// Close reports whether |a-b| < tol.
// Negative tol is normalized to its absolute value.
func Close(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) < math.Abs(tol)
}

// IsFinite reports whether both parts of a are finite.
func IsFinite(a complex128) bool {
	re, im := real(a), imag(a)

	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}
