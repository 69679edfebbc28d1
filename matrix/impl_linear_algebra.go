// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, matrix-vector products, Kronecker products, the
// conjugate transpose, scalar scaling and tolerance comparisons. All functions
// perform strict fail-fast validation and return wrapped sentinels on
// dimension mismatches.
//
// Notes:
//   - Every kernel materializes its operands as *Dense once (asDense) and then
//     runs flat-slice loops in a fixed order, so results are bit-for-bit
//     reproducible for the same inputs.
//   - Operands are never mutated; every result is a fresh allocation.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// ZeroSum is the initial accumulator for dot products.
const ZeroSum complex128 = 0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opKron      = "Kron"
	opKronIdVec = "KronIdentityMatVec"
	opAdjoint   = "Adjoint"
	opScale     = "Scale"
	opAllClose  = "AllClose"
	opUnitary   = "IsUnitary"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols).
//   - Stage 2: i-k-j loop over flat slices; zero a(i,k) entries are skipped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 complex128
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < da.r; i++ {
		rowOffsetA = i * da.c
		rowOffsetR = i * db.c
		for k = 0; k < da.c; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * db.c
			for j = 0; j < db.c; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r·c), Space O(r) for y.
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]complex128, d.r)
	matVecInto(d, x, y)

	return y, nil
}

// matVecInto writes d·x into y. Shapes are the caller's responsibility.
func matVecInto(d *Dense, x, y []complex128) {
	var (
		i, j, base int
		acc, xv    complex128
	)
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			xv = x[j]
			if xv != 0 {
				acc += d.data[base+j] * xv
			}
		}
		y[i] = acc
	}
}

// Kron computes the Kronecker (tensor) product a ⊗ b.
//
// Layout:
//
//	(a ⊗ b)[i·rb + k, j·cb + l] = a[i, j] · b[k, l]
//
// so the left operand selects the high-order block and the right operand the
// position inside the block. For column vectors this means the entries of b
// vary fastest.
//
// Errors:
//   - ErrNilMatrix (wrapped with "Kron").
//
// Complexity:
//   - Time O(ra·ca·rb·cb), Space O(ra·ca·rb·cb).
func Kron(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}

	rows, cols := da.r*db.r, da.c*db.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	var (
		i, j, k, l int
		av         complex128
		outRow     int
	)
	for i = 0; i < da.r; i++ {
		for j = 0; j < da.c; j++ {
			av = da.data[i*da.c+j]
			if av == 0 {
				continue
			}
			for k = 0; k < db.r; k++ {
				outRow = (i*db.r + k) * cols
				for l = 0; l < db.c; l++ {
					res.data[outRow+j*db.c+l] = av * db.data[k*db.c+l]
				}
			}
		}
	}

	return res, nil
}

// KronIdentityMatVec computes y = (I_n ⊗ m)·x without materializing I_n ⊗ m.
//
// I_n ⊗ m is block-diagonal with n copies of m, so x is split into n
// consecutive blocks of m.Cols() entries and each block is multiplied by m
// independently. The result equals MatVec(Kron(I_n, m), x) exactly (same
// summation order inside a block, and the off-block terms are exact zeros).
//
// Contract: n > 0; m non-nil; len(x) == n·m.Cols().
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "KronIdentityMatVec").
//
// Complexity:
//   - Time O(n·r·c), Space O(n·r) for y (versus O(n²·r·c) for the dense product).
func KronIdentityMatVec(n int, m Matrix, x []complex128) ([]complex128, error) {
	if n <= 0 {
		return nil, matrixErrorf(opKronIdVec, ErrInvalidDimensions)
	}
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opKronIdVec, err)
	}
	if err := ValidateVecLen(x, n*m.Cols()); err != nil {
		return nil, matrixErrorf(opKronIdVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opKronIdVec, err)
	}

	y := make([]complex128, n*d.r)
	for block := 0; block < n; block++ {
		matVecInto(d, x[block*d.c:(block+1)*d.c], y[block*d.r:(block+1)*d.r])
	}

	return y, nil
}

// Adjoint returns the conjugate transpose m† (c×r).
// Complexity: Time O(r·c), Space O(r·c).
func Adjoint(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			res.data[j*d.r+i] = cmplx.Conj(d.data[i*d.c+j])
		}
	}

	return res, nil
}

// Scale returns alpha·m.
// Complexity: Time O(r·c), Space O(r·c).
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := d.clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol·|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//
// Complexity: Time O(r·c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		if cmplx.Abs(da.data[idx]-db.data[idx]) > atol+rtol*cmplx.Abs(db.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// IsUnitary reports whether m†·m equals the identity within the configured
// epsilon (WithEpsilon, default DefaultEpsilon), compared element-wise as an
// absolute tolerance.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "IsUnitary").
//
// Complexity: Time O(n³), Space O(n²).
func IsUnitary(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opUnitary, err)
	}
	eps := NewMatrixOptions(opts...).Epsilon()

	adj, err := Dagger(m)
	if err != nil {
		return false, matrixErrorf(opUnitary, err)
	}
	prod, err := Mul(adj, m)
	if err != nil {
		return false, matrixErrorf(opUnitary, err)
	}
	id, err := NewIdentity(m.Rows())
	if err != nil {
		return false, matrixErrorf(opUnitary, err)
	}

	return AllClose(prod, id, 0, eps)
}
