// SPDX-License-Identifier: MIT

// Command quant drives a qubit register from the terminal.
//
// Without -file it runs an interactive menu (Show, Apply, Measure, Quit) on a
// register initialised from -init or -qubits. With -file it runs a JSON or
// YAML circuit once, or -shots times and prints the outcome histogram.
//
// Usage:
//
//	quant [-qubits N | -init BITS] [-seed S] [-probabilities] [-metrics]
//	quant -file circuit.yaml [-shots N] [-seed S]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/metrics"
	"github.com/katalvlaran/qsim/register"
	"github.com/katalvlaran/qsim/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/theapemachine/errnie"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(abort(err, 2))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		stop()
		os.Exit(abort(err, 1))
	}
}

// abort logs err at error level and returns status for os.Exit.
func abort(err error, status int) int {
	errnie.Error(fmt.Errorf("quant: %w", err))

	return status
}

// run executes one CLI invocation against the given streams.
func run(ctx context.Context, cfg config, in io.Reader, out io.Writer) error {
	errnie.Info("quant - qubits %d, init %q, seed %d, file %q, shots %d", cfg.Qubits, cfg.Init, cfg.Seed, cfg.File, cfg.Shots)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	var err error
	if cfg.File != "" {
		err = runFile(ctx, cfg, out, m)
	} else {
		err = runInteractive(cfg, in, out, m)
	}
	if err != nil {
		return err
	}
	if cfg.Metrics {
		return dumpMetrics(out, reg)
	}

	return nil
}

func runInteractive(cfg config, in io.Reader, out io.Writer, m *metrics.Metrics) error {
	var opts []register.Option
	if cfg.Seed != 0 {
		opts = append(opts, register.WithSource(register.NewSeededSource(cfg.Seed)))
	}

	return newSession(in, out, register.New(cfg.initialBits(), opts...), cfg.Probabilities, m).run()
}

func runFile(ctx context.Context, cfg config, out io.Writer, m *metrics.Metrics) error {
	p, err := circuit.LoadFile(cfg.File)
	if err != nil {
		return err
	}
	opts := []circuit.Option{circuit.WithMetrics(m)}
	if cfg.Seed != 0 {
		opts = append(opts, circuit.WithSeed(cfg.Seed))
	}
	runner := circuit.NewRunner(opts...)

	if cfg.Shots > 1 {
		h, err := runner.RunShots(ctx, p, cfg.Shots)
		if err != nil {
			return err
		}
		return render.Histogram(out, h.Keys(), h.Counts, h.Shots)
	}

	res, err := runner.Run(p)
	if err != nil {
		return err
	}
	for _, o := range res.Outcomes {
		bit := 0
		if o.Value {
			bit = 1
		}
		if _, err := fmt.Fprintf(out, "qubit %d: %d\n", o.Qubit, bit); err != nil {
			return err
		}
	}
	if err := render.State(out, res.Register); err != nil {
		return err
	}
	if cfg.Probabilities {
		return render.Probabilities(out, res.Register, false)
	}

	return nil
}

// dumpMetrics writes the registry in the Prometheus text format.
func dumpMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("quant: gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("quant: write metrics: %w", err)
		}
	}

	return nil
}
