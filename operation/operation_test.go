package operation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qsim/matrix"
	"github.com/katalvlaran/qsim/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCopiesInputs ensures later edits to the arguments do not leak in.
func TestNewCopiesInputs(t *testing.T) {
	targets := []int{0, 2}
	m, err := matrix.NewIdentity(4)
	require.NoError(t, err)

	op := operation.New(targets, m)
	targets[0] = 7
	require.NoError(t, m.Set(0, 0, 5))

	require.Equal(t, []int{0, 2}, op.Targets())
	v, _ := op.Matrix().At(0, 0)
	require.Equal(t, complex128(1), v)
	require.Equal(t, "custom", op.Name())
	require.Equal(t, 2, op.Arity())

	// Accessors hand out copies too.
	got := op.Targets()
	got[1] = 9
	require.Equal(t, []int{0, 2}, op.Targets())
}

// TestNilMatrix yields an operation with no matrix.
func TestNilMatrix(t *testing.T) {
	op := operation.New([]int{0}, nil)
	r, c := op.Dims()
	require.Zero(t, r)
	require.Zero(t, c)
	require.Nil(t, op.Matrix())
	require.False(t, op.IsUnitary(1e-9))
}

// TestGateMatrices pins the catalog matrices entry by entry.
func TestGateMatrices(t *testing.T) {
	s := 1 / math.Sqrt2
	tests := []struct {
		name string
		op   operation.Operation
		want []complex128
	}{
		{"identity", operation.Identity(0), []complex128{1, 0, 0, 1}},
		{"hadamard", operation.Hadamard(0), []complex128{complex(s, 0), complex(s, 0), complex(s, 0), complex(-s, 0)}},
		{"phase", operation.Phase(0), []complex128{1, 0, 0, 1i}},
		{"not", operation.Not(0), []complex128{0, 1, 1, 0}},
		{"pauli-y", operation.PauliY(0), []complex128{0, -1i, 1i, 0}},
		{"pauli-z", operation.PauliZ(0), []complex128{1, 0, 0, -1}},
		{"cnot", operation.CNOT(0, 1), []complex128{
			1, 0, 0, 0,
			0, 0, 0, 1,
			0, 0, 1, 0,
			0, 1, 0, 0,
		}},
		{"swap", operation.Swap(0, 1), []complex128{
			1, 0, 0, 0,
			0, 0, 1, 0,
			0, 1, 0, 0,
			0, 0, 0, 1,
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.op.Name())
			assert.Equal(t, tc.want, tc.op.Matrix().Flat())
			assert.True(t, tc.op.IsUnitary(1e-9))
		})
	}
}

// TestCNOTTargetOrder keeps the control first.
func TestCNOTTargetOrder(t *testing.T) {
	op := operation.CNOT(3, 1)
	require.Equal(t, []int{3, 1}, op.Targets())
	r, c := op.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 4, c)
}

// TestIsUnitaryRejects flags a non-unitary custom matrix.
func TestIsUnitaryRejects(t *testing.T) {
	m, err := matrix.NewFromRows([][]complex128{{1, 1}, {0, 1}})
	require.NoError(t, err)
	require.False(t, operation.New([]int{0}, m).IsUnitary(1e-9))

	rect, err := matrix.NewDense(2, 4)
	require.NoError(t, err)
	require.False(t, operation.New([]int{0}, rect).IsUnitary(1e-9))
}

// TestCatalog checks lookup, arity grouping and menu order.
func TestCatalog(t *testing.T) {
	g, ok := operation.Lookup(operation.NameCNOT)
	require.True(t, ok)
	require.Equal(t, 2, g.Arity)
	op := g.Build(2, 0)
	require.Equal(t, []int{2, 0}, op.Targets())
	require.Equal(t, operation.NameCNOT, op.Name())

	_, ok = operation.Lookup("toffoli")
	require.False(t, ok)

	var unary []string
	for _, g := range operation.Unary() {
		unary = append(unary, g.Name)
		require.Equal(t, 1, g.Arity)
	}
	require.Equal(t, []string{"identity", "hadamard", "phase", "not", "pauli-y", "pauli-z"}, unary)

	var binary []string
	for _, g := range operation.Binary() {
		binary = append(binary, g.Name)
	}
	require.Equal(t, []string{"cnot", "swap"}, binary)
}

// TestBuildWrongArityKeepsTargets leaves rejection to the register.
func TestBuildWrongArityKeepsTargets(t *testing.T) {
	g, _ := operation.Lookup(operation.NameHadamard)
	op := g.Build(0, 1)
	require.Equal(t, []int{0, 1}, op.Targets())
	r, c := op.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
}

// diagonal is a Matrix that is not a *matrix.Dense.
type diagonal []complex128

func (d diagonal) Rows() int { return len(d) }
func (d diagonal) Cols() int { return len(d) }
func (d diagonal) At(i, j int) (complex128, error) {
	if i != j {
		return 0, nil
	}
	return d[i], nil
}
func (d diagonal) Set(int, int, complex128) error { return nil }
func (d diagonal) Clone() matrix.Matrix { return append(diagonal(nil), d...) }

// TestNewFromForeignMatrix copies any Matrix implementation into a Dense.
func TestNewFromForeignMatrix(t *testing.T) {
	op := operation.New([]int{1}, diagonal{1, -1})
	require.Equal(t, []complex128{1, 0, 0, -1}, op.Matrix().Flat())
	require.True(t, op.IsUnitary(1e-9))
}
