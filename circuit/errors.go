// SPDX-License-Identifier: MIT

package circuit

import "errors"

var (
	// ErrUnknownGate is returned for a step whose gate is not in the catalog.
	ErrUnknownGate = errors.New("circuit: unknown gate")
	// ErrArity is returned when a step's target count does not match its gate.
	ErrArity = errors.New("circuit: wrong number of targets")
	// ErrQubits is returned when qubits and initial disagree or are negative.
	ErrQubits = errors.New("circuit: inconsistent qubit count")
	// ErrFormat is returned for an unsupported file extension.
	ErrFormat = errors.New("circuit: unsupported format")
	// ErrShots is returned by RunShots for n <= 0.
	ErrShots = errors.New("circuit: shots must be positive")
)
