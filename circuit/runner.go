// SPDX-License-Identifier: MIT

package circuit

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/qsim/metrics"
	"github.com/katalvlaran/qsim/operation"
	"github.com/katalvlaran/qsim/register"
	"github.com/theapemachine/errnie"
)

// Runner executes programs. A Runner is not safe for concurrent use when it
// holds a shared Source.
type Runner struct {
	src     register.Source
	seed    int64
	seeded  bool
	metrics *metrics.Metrics
}

// Option configures a Runner.
type Option func(*Runner)

// WithSource fixes the random source for every run. Panics on nil.
func WithSource(src register.Source) Option {
	if src == nil {
		panic("circuit: WithSource(nil)")
	}

	return func(r *Runner) { r.src = src }
}

// WithSeed makes runs reproducible: Run restarts the seeded stream on every
// call and RunShots derives one stream per shot. Ignored when WithSource is set.
func WithSeed(seed int64) Option {
	return func(r *Runner) {
		r.seed = seed
		r.seeded = true
	}
}

// WithMetrics records gate, measurement and error counts on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// NewRunner returns a Runner. Without options it uses the process-wide
// generator and records no metrics.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, fn := range opts {
		fn(r)
	}

	return r
}

// Outcome is one measurement result.
type Outcome struct {
	Qubit int  `json:"qubit" yaml:"qubit"`
	Value bool `json:"value" yaml:"value"`
}

// Result is the outcome of one Run.
type Result struct {
	RunID    uuid.UUID
	Program  string
	Outcomes []Outcome
	Register *register.Register
}

// Key renders the outcomes as a bit string in program order ("" for none).
func (res *Result) Key() string {
	var sb strings.Builder
	for _, o := range res.Outcomes {
		if o.Value {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

// Histogram counts outcome keys over a multi-shot run.
type Histogram struct {
	RunID  uuid.UUID
	Shots  int
	Counts map[string]int
}

// Keys returns the observed keys in ascending order.
func (h *Histogram) Keys() []string {
	keys := make([]string, 0, len(h.Counts))
	for k := range h.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// source picks the Source for one execution; stream is the shot number.
func (r *Runner) source(stream uint64, perShot bool) register.Source {
	switch {
	case r.src != nil:
		return r.src
	case r.seeded && perShot:
		return register.DeriveSource(r.seed, stream)
	case r.seeded:
		return register.NewSeededSource(r.seed)
	default:
		return register.GlobalSource()
	}
}

// Run validates p and executes it once.
// Errors from the register wrap *register.OperationError.
func (r *Runner) Run(p Program) (*Result, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	id := uuid.New()
	errnie.Info("circuit run %s - program %q, qubits %d, steps %d", id, p.Name, p.Size(), len(p.Steps))

	res, err := r.execute(id, p, r.source(0, false), true)
	if err != nil {
		errnie.Error(fmt.Errorf("circuit run %s: %w", id, err))
		return nil, err
	}
	errnie.Info("circuit run %s - done, outcomes %q", id, res.Key())

	return res, nil
}

// RunShots executes p n times and counts the outcome keys. Programs without a
// measure step get a terminal measurement of every qubit. ctx is checked
// between shots.
func (r *Runner) RunShots(ctx context.Context, p Program, n int) (*Histogram, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrShots, n)
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	p = p.withTerminalMeasurement()

	h := &Histogram{RunID: uuid.New(), Counts: make(map[string]int)}
	errnie.Info("circuit shots %s - program %q, qubits %d, shots %d", h.RunID, p.Name, p.Size(), n)
	for shot := 0; shot < n; shot++ {
		if err := ctx.Err(); err != nil {
			errnie.Info("circuit shots %s - cancelled after %d shots", h.RunID, h.Shots)
			return h, err
		}
		res, err := r.execute(h.RunID, p, r.source(uint64(shot), true), false)
		if err != nil {
			return h, fmt.Errorf("shot %d: %w", shot, err)
		}
		h.Counts[res.Key()]++
		h.Shots++
	}
	errnie.Info("circuit shots %s - done, %d distinct outcomes", h.RunID, len(h.Counts))

	return h, nil
}

// execute runs the steps of an already validated program.
func (r *Runner) execute(id uuid.UUID, p Program, src register.Source, verbose bool) (*Result, error) {
	reg := register.New(p.InitialBits(), register.WithSource(src))
	res := &Result{RunID: id, Program: p.Name, Register: reg}

	for i, s := range p.Steps {
		if s.Gate == GateMeasure {
			v, err := reg.TryMeasure(s.Targets[0])
			if err != nil {
				r.recordError(err)
				return nil, fmt.Errorf("step %d (%s): %w", i, s.Gate, err)
			}
			r.metrics.IncrementMeasurement(strconv.Itoa(s.Targets[0]), v)
			res.Outcomes = append(res.Outcomes, Outcome{Qubit: s.Targets[0], Value: v})
			if verbose {
				errnie.Info("circuit run %s - step %d: measure %d -> %v", id, i, s.Targets[0], v)
			}
			continue
		}

		g, _ := operation.Lookup(s.Gate)
		start := time.Now()
		if _, err := reg.TryApply(g.Build(s.Targets...)); err != nil {
			r.recordError(err)
			return nil, fmt.Errorf("step %d (%s): %w", i, s.Gate, err)
		}
		r.metrics.ObserveApply(s.Gate, time.Since(start))
		if verbose {
			errnie.Info("circuit run %s - step %d: %s %v", id, i, s.Gate, s.Targets)
		}
	}
	r.metrics.IncrementRuns()

	return res, nil
}

func (r *Runner) recordError(err error) {
	var opErr *register.OperationError
	if errors.As(err, &opErr) {
		r.metrics.IncrementError(opErr.Kind.String())
	}
}
