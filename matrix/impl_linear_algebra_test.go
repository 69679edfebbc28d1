package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qsim/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hadamard returns the 2×2 Hadamard matrix used across these tests.
func hadamard(t *testing.T) *matrix.Dense {
	t.Helper()
	s := complex(1/math.Sqrt2, 0)
	h, err := matrix.NewFromRows([][]complex128{{s, s}, {s, -s}})
	require.NoError(t, err)

	return h
}

// TestMul checks a small complex product against a hand computation.
func TestMul(t *testing.T) {
	a, _ := matrix.NewFromRows([][]complex128{{1, 1i}, {0, 2}})
	b, _ := matrix.NewFromRows([][]complex128{{1i, 0}, {1, 1}})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	// row0: [1*i + i*1, 0 + i*1] = [2i, i]; row1: [2, 2]
	require.Equal(t, []complex128{2i, 1i, 2, 2}, got.Flat())

	_, err = matrix.Mul(a, hadamard(t).Clone())
	require.NoError(t, err)

	c, _ := matrix.NewDense(3, 1)
	_, err = matrix.Mul(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec applies the Hadamard to |0⟩ and checks the length contract.
func TestMatVec(t *testing.T) {
	y, err := matrix.MatVec(hadamard(t), []complex128{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1/math.Sqrt2, real(y[0]), 1e-12)
	assert.InDelta(t, 1/math.Sqrt2, real(y[1]), 1e-12)

	_, err = matrix.MatVec(hadamard(t), []complex128{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestKronColumns pins the block layout: the left operand is the high-order part.
func TestKronColumns(t *testing.T) {
	one, _ := matrix.NewColumn([]complex128{0, 1})  // |1⟩
	zero, _ := matrix.NewColumn([]complex128{1, 0}) // |0⟩

	got, err := matrix.Kron(one, zero) // |1⟩ ⊗ |0⟩ = |10⟩ = index 2
	require.NoError(t, err)
	require.Equal(t, 4, got.Rows())
	require.Equal(t, 1, got.Cols())
	require.Equal(t, []complex128{0, 0, 1, 0}, got.Flat())
}

// TestKronMatrices checks I₂ ⊗ X produces the block-diagonal 4×4.
func TestKronMatrices(t *testing.T) {
	id, _ := matrix.NewIdentity(2)
	x, _ := matrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})

	got, err := matrix.Kron(id, x)
	require.NoError(t, err)
	want, _ := matrix.NewFromRows([][]complex128{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	ok, err := matrix.AllClose(got, want, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestKronIdentityMatVecMatchesDense compares the block kernel against the
// materialized Kronecker product on a non-trivial vector.
func TestKronIdentityMatVecMatchesDense(t *testing.T) {
	m, _ := matrix.NewFromRows([][]complex128{{1, 2i}, {-1i, 3}})
	x := []complex128{1, 2, 1i, -1, 0.5, 0, 0, 1}

	fast, err := matrix.KronIdentityMatVec(4, m, x)
	require.NoError(t, err)

	id, _ := matrix.NewIdentity(4)
	full, err := matrix.Kron(id, m)
	require.NoError(t, err)
	slow, err := matrix.MatVec(full, x)
	require.NoError(t, err)

	require.Equal(t, slow, fast)

	_, err = matrix.KronIdentityMatVec(3, m, x)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.KronIdentityMatVec(0, m, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAdjointScale checks the conjugate transpose and scalar multiplication.
func TestAdjointScale(t *testing.T) {
	m, _ := matrix.NewFromRows([][]complex128{{1, 2i, 3}})
	adj, err := matrix.Adjoint(m)
	require.NoError(t, err)
	require.Equal(t, 3, adj.Rows())
	require.Equal(t, []complex128{1, -2i, 3}, adj.Flat())

	s, err := matrix.Scale(m, 1i)
	require.NoError(t, err)
	require.Equal(t, []complex128{1i, -2, 3i}, s.Flat())
}

// TestAllClose covers tolerance boundaries and shape errors.
func TestAllClose(t *testing.T) {
	a, _ := matrix.NewFromRows([][]complex128{{1, 1i}})
	b, _ := matrix.NewFromRows([][]complex128{{1 + 1e-10, 1i}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	c, _ := matrix.NewDense(2, 1)
	_, err = matrix.AllClose(a, c, 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestIsUnitary accepts Hadamard and rejects a non-unitary matrix.
func TestIsUnitary(t *testing.T) {
	ok, err := matrix.IsUnitary(hadamard(t))
	require.NoError(t, err)
	require.True(t, ok)

	notU, _ := matrix.NewFromRows([][]complex128{{1, 1}, {0, 1}})
	ok, err = matrix.IsUnitary(notU)
	require.NoError(t, err)
	require.False(t, ok)

	rect, _ := matrix.NewDense(2, 3)
	_, err = matrix.IsUnitary(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestIdentityLike requires a square template.
func TestIdentityLike(t *testing.T) {
	id, err := matrix.IdentityLike(hadamard(t))
	require.NoError(t, err)
	require.Equal(t, []complex128{1, 0, 0, 1}, id.Flat())

	rect, _ := matrix.NewDense(1, 2)
	_, err = matrix.IdentityLike(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
