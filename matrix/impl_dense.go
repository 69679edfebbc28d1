// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Flat: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qsim/amplitude"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for NewFromRows
	ctxColumn   = "Column"   // ctor tag for NewColumn
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel is preserved via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of complex128 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int          // row and column counts (> 0)
	data           []complex128 // contiguous row-major storage (len == r*c)
	validateNaNInf bool         // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer and apply the numeric policy.
//
// Options:
//   - WithNoValidateNaNInf() disables the finite-value guard in Set.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]complex128, rows*cols),
		validateNaNInf: NewMatrixOptions(opts...).ValidateNaNInf(),
	}, nil
}

// NewFromRows builds a Dense from a slice of equally long rows.
// Values are copied; the caller's slices are never retained.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrRagged when any row length differs from the first.
//   - ErrNaNInf when the numeric policy rejects an entry.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]complex128, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, denseErrorf(ctxFromRows, i, len(row), ErrRagged)
		}
		for j, v := range row {
			if m.validateNaNInf && !amplitude.IsFinite(v) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// NewColumn builds an n×1 column vector from v (copied).
//
// Errors:
//   - ErrInvalidDimensions when v is empty.
//   - ErrNaNInf when the numeric policy rejects an entry.
//
// Complexity: O(n).
func NewColumn(v []complex128, opts ...Option) (*Dense, error) {
	m, err := NewDense(len(v), 1, opts...)
	if err != nil {
		return nil, err
	}
	for i, x := range v {
		if m.validateNaNInf && !amplitude.IsFinite(x) {
			return nil, denseErrorf(ctxColumn, i, 0, ErrNaNInf)
		}
	}
	copy(m.data, v)

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange wrapped with
// the caller's method tag and coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates).
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates).
//   - ErrNaNInf when validateNaNInf is on and v has a non-finite component.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && !amplitude.IsFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix, including its numeric policy.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the concrete-typed variant used by kernels.
func (m *Dense) clone() *Dense {
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf, validateNaNInf: m.validateNaNInf}
}

// Flat returns a copy of the row-major backing data.
// For an n×1 column this is the vector itself.
// Complexity: O(r*c).
func (m *Dense) Flat() []complex128 {
	out := make([]complex128, len(m.data))
	copy(out, m.data)

	return out
}

// String implements fmt.Stringer. One bracketed row per line.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// asDense returns m itself when it is already a *Dense, otherwise a Dense copy
// read through the interface. Kernels call this once so that their inner loops
// only ever touch flat slices.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}
