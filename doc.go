// Package qsim is a small state-vector quantum register simulator: build a
// register from classical bits, apply gates to any subset of its qubits and
// measure them one at a time.
//
// What is qsim?
//
//	A pure-Go library and CLI that brings together:
//		• Complex dense algebra: products, Kronecker products, adjoints
//		• Basis states: classical bit strings folded into 2^N amplitudes
//		• A gate catalog: Identity, Hadamard, Phase, Pauli X/Y/Z, CNOT, Swap
//		• The register engine: permutation-based apply on non-adjacent targets,
//		  measurement with collapse and renormalization
//		• Circuits: JSON/YAML programs, seeded multi-shot runs, Prometheus metrics
//
// Everything is organized under these subpackages:
//
//	amplitude/ — complex scalar helpers (conjugate, squared magnitude, tolerance)
//	matrix/    — dense complex128 matrices and the linear-algebra kernels
//	basis/     — classical basis-state construction and index ordering
//	operation/ — the Operation value and the named gate catalog
//	register/  — the register engine, its errors and random sources
//	render/    — binary-labelled state, probability and histogram listings
//	metrics/   — Prometheus collectors for gates, measurements and errors
//	circuit/   — program files, the runner and multi-shot histograms
//	cmd/quant/ — the interactive and batch command line
//
// Quick example, a Bell pair on two qubits:
//
//	q0 ──H──●──M
//	        │
//	q1 ─────X──M
//
//	r := register.New([]bool{false, false})
//	r.Apply(operation.Hadamard(0)).Apply(operation.CNOT(0, 1))
//	a, b := r.Measure(0), r.Measure(1) // always equal
//
// Index i of the state vector holds the basis state whose qubit k is bit k of
// i, so qubit 0 is the least significant bit of every label.
//
//	go install github.com/katalvlaran/qsim/cmd/quant@latest
package qsim
