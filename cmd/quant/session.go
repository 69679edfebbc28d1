// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/qsim/metrics"
	"github.com/katalvlaran/qsim/operation"
	"github.com/katalvlaran/qsim/register"
	"github.com/katalvlaran/qsim/render"
	"github.com/theapemachine/errnie"
)

var errInput = errors.New("quant: invalid input")

// Menu entries, in display order.
const (
	choiceShow    = "Show"
	choiceApply   = "Apply"
	choiceMeasure = "Measure"
	choiceQuit    = "Quit"

	kindUnary  = "Unary"
	kindBinary = "Binary"
)

// session is the interactive menu loop over one register.
type session struct {
	in            *bufio.Scanner
	out           io.Writer
	reg           *register.Register
	probabilities bool
	metrics       *metrics.Metrics
}

func newSession(in io.Reader, out io.Writer, reg *register.Register, probabilities bool, m *metrics.Metrics) *session {
	return &session{
		in:            bufio.NewScanner(in),
		out:           out,
		reg:           reg,
		probabilities: probabilities,
		metrics:       m,
	}
}

// run loops until Quit or end of input. Invalid input and rejected operations
// end the loop with an error.
func (s *session) run() error {
	for {
		choice, err := s.selectOne("Select an option", []string{choiceShow, choiceApply, choiceMeasure, choiceQuit})
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case choiceShow:
			err = s.show()
		case choiceApply:
			err = s.apply()
		case choiceMeasure:
			err = s.measure()
		case choiceQuit:
			return s.show()
		}
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected end of input", errInput)
		}
		if err != nil {
			return err
		}
	}
}

func (s *session) show() error {
	if err := render.State(s.out, s.reg); err != nil {
		return err
	}
	if s.probabilities {
		return render.Probabilities(s.out, s.reg, false)
	}

	return nil
}

func (s *session) apply() error {
	kind, err := s.selectOne("Select an operation type", []string{kindUnary, kindBinary})
	if err != nil {
		return err
	}
	gates := operation.Unary()
	if kind == kindBinary {
		gates = operation.Binary()
	}
	names := make([]string, len(gates))
	for i, g := range gates {
		names[i] = g.Name
	}
	name, err := s.selectOne("Select an operation", names)
	if err != nil {
		return err
	}
	g, _ := operation.Lookup(name)

	targets := make([]int, 0, g.Arity)
	for i := 0; i < g.Arity; i++ {
		t, err := s.selectQubit()
		if err != nil {
			return err
		}
		targets = append(targets, t)
	}

	op := g.Build(targets...)
	start := time.Now()
	if _, err := s.reg.TryApply(op); err != nil {
		var opErr *register.OperationError
		if errors.As(err, &opErr) {
			s.metrics.IncrementError(opErr.Kind.String())
		}
		return fmt.Errorf("apply %s: %w", op, err)
	}
	s.metrics.ObserveApply(g.Name, time.Since(start))
	errnie.Info("quant - applied %s", op)

	return nil
}

func (s *session) measure() error {
	t, err := s.selectQubit()
	if err != nil {
		return err
	}
	v, err := s.reg.TryMeasure(t)
	if err != nil {
		return fmt.Errorf("measure %d: %w", t, err)
	}
	s.metrics.IncrementMeasurement(strconv.Itoa(t), v)
	bit := 0
	if v {
		bit = 1
	}
	errnie.Info("quant - measured qubit %d: %d", t, bit)
	_, err = fmt.Fprintf(s.out, "qubit %d: %d\n", t, bit)

	return err
}

// selectOne prints numbered options and reads a 1-based number or a name
// (case-insensitive).
func (s *session) selectOne(prompt string, options []string) (string, error) {
	fmt.Fprintf(s.out, "%s:\n", prompt)
	for i, o := range options {
		fmt.Fprintf(s.out, "  %d) %s\n", i+1, o)
	}
	fmt.Fprint(s.out, "> ")

	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(line); err == nil {
		if n < 1 || n > len(options) {
			return "", fmt.Errorf("%w: option %d out of 1..%d", errInput, n, len(options))
		}
		return options[n-1], nil
	}
	for _, o := range options {
		if strings.EqualFold(o, line) {
			return o, nil
		}
	}

	return "", fmt.Errorf("%w: unknown option %q", errInput, line)
}

// selectQubit reads one target index in [0, N).
func (s *session) selectQubit() (int, error) {
	n := s.reg.Size()
	fmt.Fprintf(s.out, "Select a target index [0-%d]: ", n-1)
	line, err := s.readLine()
	if err != nil {
		return 0, err
	}
	t, err := strconv.Atoi(line)
	if err != nil || t < 0 || t >= n {
		return 0, fmt.Errorf("%w: target %q out of 0..%d", errInput, line, n-1)
	}

	return t, nil
}

func (s *session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("quant: read input: %w", err)
		}
		return "", io.EOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}
