// Package register implements a state-vector quantum register: N qubits held
// as 2^N complex amplitudes, mutated by unitary operations on arbitrary target
// subsets and by single-qubit measurement with collapse.
//
// Ordering contract:
//
//	index i of the state vector ↔ basis state whose qubit k equals bit k of i
//	(bit 0 is the least significant).
//
// A Register built from bits b0..b(N-1) starts in the basis state at index
// Σ b_k·2^k, so New([]bool{true, false}) has amplitude 1 at index 1.
//
// Applying an operation with targets T = (t0..t(k-1)) and a 2^k×2^k matrix M:
//
//  1. Validate: no targets → NoTargets; M not 2^k×2^k → InvalidDimensions;
//     a repeated target → InvalidTarget(dup); a target outside [0, N) →
//     InvalidTarget(t). Nothing is mutated when validation fails.
//  2. Build the permutation π that sends sub-index bit j to qubit t_j for j < k
//     and the remaining qubits, ascending, to bits k..N-1.
//  3. Gather the permuted vector, multiply by I(2^(N-k)) ⊗ M block by block,
//     and scatter the result back through π.
//
// Measuring qubit t sums |a_i|² over both halves of the index space split by
// bit t, draws x from the register's Source and reports 1 when x ≥ p0. The
// amplitudes that disagree with the outcome are zeroed and the rest are divided
// by √p(outcome).
//
// Errors:
//
//	*OperationError carries the Kind and its payload and unwraps to one of
//	ErrInvalidTarget, ErrInvalidDimensions, ErrNoTargets. TryApply and
//	TryMeasure return it; Apply and Measure panic with it.
//
// Concurrency: a Register is not safe for concurrent use.
package register
