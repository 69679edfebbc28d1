// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qsim/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsColsShape verifies the dimension accessors.
func TestRowsColsShape(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1i)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, complex(7.5, -1)))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, complex(7.5, -1), val)
}

// TestSetNaNPolicy checks the finite-value guard and its opt-out.
func TestSetNaNPolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, complex(math.NaN(), 0)), matrix.ErrNaNInf)

	lax, err := matrix.NewDense(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, lax.Set(0, 0, complex(0, math.Inf(1))))
}

// TestNewFromRows covers copy semantics, ragged input and empty input.
func TestNewFromRows(t *testing.T) {
	rows := [][]complex128{{1, 2}, {3, 4i}}
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	rows[0][0] = 99 // mutate the source; the matrix must not observe it
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(1), v)

	_, err = matrix.NewFromRows([][]complex128{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFromRows([][]complex128{{complex(math.NaN(), 0)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewColumnFlat checks that a column round-trips through Flat.
func TestNewColumnFlat(t *testing.T) {
	col, err := matrix.NewColumn([]complex128{1, 0, 1i})
	require.NoError(t, err)
	require.Equal(t, 3, col.Rows())
	require.Equal(t, 1, col.Cols())
	require.Equal(t, []complex128{1, 0, 1i}, col.Flat())

	_, err = matrix.NewColumn(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewFromRows([][]complex128{{1, 0}, {0, 2}})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(1), orig)
}

// TestStringOutput checks that String() formats one bracketed row per line.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewFromRows([][]complex128{{1, 0}, {0, -1i}})
	require.NoError(t, err)

	require.Equal(t, "[(1+0i), (0+0i)]\n[(0+0i), (0-1i)]\n", m.String())
}
