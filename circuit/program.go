// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"

	"github.com/katalvlaran/qsim/operation"
	"github.com/katalvlaran/qsim/register"
)

// GateMeasure is the pseudo-gate name for a measurement step.
const GateMeasure = "measure"

// Step is one program instruction.
type Step struct {
	Gate    string `json:"gate" yaml:"gate"`
	Targets []int  `json:"targets" yaml:"targets"`
}

// Program is a named gate sequence over a fixed initial state.
// Qubits may replace Initial to start from all zeros.
type Program struct {
	Name    string `json:"name" yaml:"name"`
	Qubits  int    `json:"qubits,omitempty" yaml:"qubits,omitempty"`
	Initial []bool `json:"initial,omitempty" yaml:"initial,omitempty"`
	Steps   []Step `json:"steps" yaml:"steps"`
}

// InitialBits returns the initial classical state.
func (p Program) InitialBits() []bool {
	if len(p.Initial) > 0 {
		return append([]bool(nil), p.Initial...)
	}

	return make([]bool, p.Qubits)
}

// Size returns the number of qubits.
func (p Program) Size() int { return len(p.InitialBits()) }

// Measures reports whether any step is a measurement.
func (p Program) Measures() bool {
	for _, s := range p.Steps {
		if s.Gate == GateMeasure {
			return true
		}
	}

	return false
}

// withTerminalMeasurement appends a measurement of every qubit, ascending,
// when p has none.
func (p Program) withTerminalMeasurement() Program {
	if p.Measures() {
		return p
	}
	out := p
	out.Steps = make([]Step, len(p.Steps), len(p.Steps)+p.Size())
	copy(out.Steps, p.Steps)
	for q := 0; q < p.Size(); q++ {
		out.Steps = append(out.Steps, Step{Gate: GateMeasure, Targets: []int{q}})
	}

	return out
}

// Validate checks gate names, target counts and the qubit count.
// Target ranges are left to the register.
func Validate(p Program) error {
	if p.Qubits < 0 || (p.Qubits > 0 && len(p.Initial) > 0 && p.Qubits != len(p.Initial)) {
		return fmt.Errorf("%w: qubits %d, initial %d", ErrQubits, p.Qubits, len(p.Initial))
	}
	if p.Size() > register.MaxQubits {
		return fmt.Errorf("%w: %d qubits exceeds %d", ErrQubits, p.Size(), register.MaxQubits)
	}
	for i, s := range p.Steps {
		want := 1
		if s.Gate != GateMeasure {
			g, ok := operation.Lookup(s.Gate)
			if !ok {
				return fmt.Errorf("step %d: %w: %q", i, ErrUnknownGate, s.Gate)
			}
			want = g.Arity
		}
		if len(s.Targets) != want {
			return fmt.Errorf("step %d (%s): %w: got %d, want %d", i, s.Gate, ErrArity, len(s.Targets), want)
		}
	}

	return nil
}
