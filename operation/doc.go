// Package operation defines the Operation value consumed by a register and the
// catalog of named gates that produce it.
//
// An Operation is a plain data aggregate: an ordered list of target qubit
// indices and a square matrix of dimension 2^k for k targets. It is immutable
// and reusable across registers. Gate constructors never fail and do not know
// the register size: out-of-range targets, duplicate targets and a matrix of
// the wrong dimension are all reported by the register when the operation is
// applied.
//
// Target order is significant. The matrix acts on the targets as if target[0]
// were the least significant qubit of a k-qubit subsystem, so for CNOT(c, t)
// the control c is sub-index bit 0 and the target t is sub-index bit 1:
//
//	CNOT = [1 0 0 0]   |t c⟩: 00 → 00
//	       [0 0 0 1]          01 → 11
//	       [0 0 1 0]          10 → 10
//	       [0 1 0 0]          11 → 01
package operation
