// SPDX-License-Identifier: MIT

package register

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qsim/amplitude"
	"github.com/katalvlaran/qsim/basis"
	"github.com/katalvlaran/qsim/matrix"
	"github.com/katalvlaran/qsim/operation"
)

// minOutcomeProbability is the smallest probability a measurement outcome may
// have before the other outcome is reported instead. It absorbs rounding in p0
// when a draw lands just above it although the state is (numerically) classical.
const minOutcomeProbability = 1e-15

// MaxQubits is the largest register size accepted by size checks in front of
// New. 2^30 amplitudes take 16 GiB; beyond 62 qubits the index space overflows.
const MaxQubits = 30

// Register is an N-qubit state vector.
type Register struct {
	size  int
	state []complex128
	src   Source
	tol   float64
}

// New returns a register in the classical basis state given by bits,
// bit i being qubit i. It returns no error; callers taking the size from
// untrusted input check it against MaxQubits first, since the state vector
// needs 2^len(bits) amplitudes.
func New(bits []bool, opts ...Option) *Register {
	o := gatherOptions(opts...)

	return &Register{
		size:  len(bits),
		state: basis.State(bits),
		src:   o.src,
		tol:   o.tol,
	}
}

// Size returns the number of qubits.
func (r *Register) Size() int { return r.size }

// Tolerance returns the comparison tolerance.
func (r *Register) Tolerance() float64 { return r.tol }

// State returns a copy of the 2^N amplitudes.
func (r *Register) State() []complex128 {
	return append([]complex128(nil), r.state...)
}

// Amplitude returns the amplitude at basis index i.
func (r *Register) Amplitude(i int) (complex128, error) {
	if i < 0 || i >= len(r.state) {
		return 0, fmt.Errorf("Amplitude(%d): %w", i, ErrIndexOutOfRange)
	}

	return r.state[i], nil
}

// Probabilities returns |a_i|² for every basis index.
func (r *Register) Probabilities() []float64 {
	out := make([]float64, len(r.state))
	for i, a := range r.state {
		out[i] = amplitude.NormSqr(a)
	}

	return out
}

// Norm returns the Euclidean norm of the state vector (1 for a valid state).
func (r *Register) Norm() float64 {
	var s float64
	for _, a := range r.state {
		s += amplitude.NormSqr(a)
	}

	return math.Sqrt(s)
}

// Clone returns an independent copy. The clone shares the random Source.
func (r *Register) Clone() *Register {
	return &Register{size: r.size, state: r.State(), src: r.src, tol: r.tol}
}

// Equal reports whether both registers have the same size and every pair of
// amplitudes differs by less than the receiver's tolerance.
func (r *Register) Equal(other *Register) bool {
	if other == nil || r.size != other.size {
		return false
	}
	for i := range r.state {
		if !amplitude.Close(r.state[i], other.state[i], r.tol) {
			return false
		}
	}

	return true
}

// TryApply validates op against the register and applies it in place.
// It returns the receiver for chaining; on error the state is untouched and
// the error is an *OperationError.
//
// Complexity: O(2^N·(N + 2^k)) time, O(2^N) extra space.
func (r *Register) TryApply(op operation.Operation) (*Register, error) {
	targets := op.Targets()
	m := op.Matrix()
	if err := validateOperation(r.size, targets, m); err != nil {
		return r, err
	}

	src := sourceIndices(permutation(r.size, targets))
	permuted := make([]complex128, len(r.state))
	for i, j := range src {
		permuted[i] = r.state[j]
	}

	out, err := matrix.KronIdentityMatVec(len(r.state)>>len(targets), m, permuted)
	if err != nil {
		// Shapes were validated above.
		panic(fmt.Sprintf("register: TryApply: %v", err))
	}
	for i, j := range src {
		r.state[j] = out[i]
	}

	return r, nil
}

// Apply is TryApply that panics with the *OperationError on invalid input.
func (r *Register) Apply(op operation.Operation) *Register {
	if _, err := r.TryApply(op); err != nil {
		panic(err)
	}

	return r
}

// TryMeasure measures qubit target, collapses the state onto the outcome and
// renormalizes. The outcome is true for |1⟩.
//
// Complexity: O(2^N).
func (r *Register) TryMeasure(target int) (bool, error) {
	if err := validateQubit(r.size, target); err != nil {
		return false, err
	}

	mask := 1 << target
	var p0, p1 float64
	for i, a := range r.state {
		if i&mask == 0 {
			p0 += amplitude.NormSqr(a)
		} else {
			p1 += amplitude.NormSqr(a)
		}
	}

	outcome := r.src.Float64() >= p0
	p := p0
	if outcome {
		p = p1
	}
	if p < minOutcomeProbability {
		outcome = !outcome
		p = p0 + p1 - p
	}

	scale := math.Sqrt(p)
	for i, a := range r.state {
		if (i&mask != 0) != outcome {
			r.state[i] = 0
			continue
		}
		r.state[i] = amplitude.DivReal(a, scale)
	}

	return outcome, nil
}

// Measure is TryMeasure that panics with the *OperationError on invalid input.
func (r *Register) Measure(target int) bool {
	outcome, err := r.TryMeasure(target)
	if err != nil {
		panic(err)
	}

	return outcome
}

// String renders the state vector via fmt.
func (r *Register) String() string {
	return fmt.Sprintf("Register(%d)%v", r.size, r.state)
}
