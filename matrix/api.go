// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructions.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// CloneMatrix returns a structural clone of m.
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// Tensor is an alias for Kron: a ⊗ b.
func Tensor(a, b Matrix) (*Dense, error) { return Kron(a, b) }

// Dagger is an alias for Adjoint: m†.
func Dagger(m Matrix) (*Dense, error) { return Adjoint(m) }
