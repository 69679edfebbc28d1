// Package circuit loads gate programs from JSON or YAML and runs them on a
// register.
//
// A program names its initial classical state and an ordered list of steps.
// Each step is either a catalog gate with its targets or the pseudo-gate
// "measure" with a single target:
//
//	name: bell
//	initial: [false, false]
//	steps:
//	  - {gate: hadamard, targets: [0]}
//	  - {gate: cnot, targets: [0, 1]}
//	  - {gate: measure, targets: [0]}
//	  - {gate: measure, targets: [1]}
//
// Run executes a program once and returns the final register with the
// measurement outcomes in program order. RunShots executes it repeatedly and
// counts outcome strings; programs without a measure step are measured on every
// qubit, ascending, after the last step.
package circuit
