// SPDX-License-Identifier: MIT

package operation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qsim/matrix"
)

// Operation pairs target qubits with the matrix that acts on them.
// The zero value has no targets and no matrix; registers reject it.
type Operation struct {
	name    string
	targets []int
	m       *matrix.Dense
}

// New builds an Operation from targets and a matrix. Both are copied, so later
// changes to the arguments do not affect the Operation. A nil m yields an
// Operation with no matrix, which registers reject as a dimension mismatch.
func New(targets []int, m matrix.Matrix) Operation {
	return NewNamed("custom", targets, m)
}

// NewNamed is New with a display name used by logs and the CLI.
func NewNamed(name string, targets []int, m matrix.Matrix) Operation {
	op := Operation{name: name, targets: append([]int(nil), targets...)}
	if matrix.ValidateNotNil(m) != nil {
		return op
	}
	if d, ok := matrix.CloneMatrix(m).(*matrix.Dense); ok {
		op.m = d
		return op
	}
	if d, err := matrix.NewFromRows(rowsOf(m), matrix.WithNoValidateNaNInf()); err == nil {
		op.m = d
	}

	return op
}

// rowsOf reads any Matrix into row slices.
func rowsOf(m matrix.Matrix) [][]complex128 {
	rows := make([][]complex128, m.Rows())
	for i := range rows {
		rows[i] = make([]complex128, m.Cols())
		for j := range rows[i] {
			rows[i][j], _ = m.At(i, j)
		}
	}

	return rows
}

// Name returns the gate name ("custom" for New).
func (o Operation) Name() string { return o.name }

// Targets returns a copy of the ordered target list.
func (o Operation) Targets() []int { return append([]int(nil), o.targets...) }

// Arity is the number of targets.
func (o Operation) Arity() int { return len(o.targets) }

// Matrix returns a copy of the operation matrix, or nil when there is none.
func (o Operation) Matrix() *matrix.Dense {
	if o.m == nil {
		return nil
	}

	return o.m.Clone().(*matrix.Dense)
}

// Dims returns the matrix shape; (0, 0) when there is no matrix.
func (o Operation) Dims() (rows, cols int) {
	if o.m == nil {
		return 0, 0
	}

	return o.m.Shape()
}

// IsUnitary reports whether the matrix is unitary within eps.
// Registers never call this; it is an optional check for custom matrices.
func (o Operation) IsUnitary(eps float64) bool {
	if o.m == nil || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return false
	}
	ok, err := matrix.IsUnitary(o.m, matrix.WithEpsilon(math.Abs(eps)))

	return err == nil && ok
}

// String renders "name[t0 t1 ...]".
func (o Operation) String() string {
	return fmt.Sprintf("%s%v", o.name, o.targets)
}
