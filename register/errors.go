// SPDX-License-Identifier: MIT

package register

import (
	"errors"
	"fmt"
)

// Kind classifies an OperationError.
type Kind int

const (
	// InvalidTarget reports a target that is repeated or outside [0, N).
	InvalidTarget Kind = iota + 1
	// InvalidDimensions reports a matrix that is not 2^k×2^k for k targets.
	InvalidDimensions
	// NoTargets reports an operation with an empty target list.
	NoTargets
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case InvalidTarget:
		return "InvalidTarget"
	case InvalidDimensions:
		return "InvalidDimensions"
	case NoTargets:
		return "NoTargets"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel errors, one per Kind, plus the accessor range error.
var (
	ErrInvalidTarget     = errors.New("register: invalid target")
	ErrInvalidDimensions = errors.New("register: invalid dimensions")
	ErrNoTargets         = errors.New("register: no targets")
	ErrIndexOutOfRange   = errors.New("register: amplitude index out of range")
)

// OperationError is returned by TryApply and TryMeasure and used as the panic
// value of Apply and Measure. Index is set for InvalidTarget; Rows and Cols
// hold the observed matrix shape for InvalidDimensions.
type OperationError struct {
	Kind       Kind
	Index      int
	Rows, Cols int
}

// Error implements error.
func (e *OperationError) Error() string {
	switch e.Kind {
	case InvalidTarget:
		return fmt.Sprintf("%v: %d", ErrInvalidTarget, e.Index)
	case InvalidDimensions:
		return fmt.Sprintf("%v: %dx%d", ErrInvalidDimensions, e.Rows, e.Cols)
	default:
		return e.Unwrap().Error()
	}
}

// Unwrap returns the sentinel matching Kind so errors.Is works.
func (e *OperationError) Unwrap() error {
	switch e.Kind {
	case InvalidTarget:
		return ErrInvalidTarget
	case InvalidDimensions:
		return ErrInvalidDimensions
	default:
		return ErrNoTargets
	}
}

func invalidTarget(idx int) *OperationError {
	return &OperationError{Kind: InvalidTarget, Index: idx}
}

func invalidDimensions(rows, cols int) *OperationError {
	return &OperationError{Kind: InvalidDimensions, Rows: rows, Cols: cols}
}
