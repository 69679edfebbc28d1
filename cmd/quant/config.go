// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/qsim/register"
)

// Environment variables read before flags.
const (
	envQubits = "QSIM_QUBITS"
	envInit   = "QSIM_INIT"
	envSeed   = "QSIM_SEED"
	envShots  = "QSIM_SHOTS"
)

// defaultQubits matches the register size of the interactive demo.
const defaultQubits = 4

var errConfig = errors.New("quant: invalid configuration")

// config is the resolved CLI configuration.
// Precedence: defaults, then environment, then flags.
type config struct {
	Qubits        int
	Init          string
	Seed          int64
	File          string
	Shots         int
	Probabilities bool
	Metrics       bool
}

func defaultConfig() config {
	return config{Qubits: defaultQubits, Shots: 1}
}

// loadConfig resolves the configuration from args and getenv.
// It returns flag.ErrHelp when -h was given.
func loadConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	cfg := defaultConfig()
	if err := cfg.fromEnv(getenv); err != nil {
		return config{}, err
	}

	fs := flag.NewFlagSet("quant", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Qubits, "qubits", cfg.Qubits, "register size, at most 30 (ignored when -init is set) ["+envQubits+"]")
	fs.StringVar(&cfg.Init, "init", cfg.Init, "initial bitstring, character i is qubit i ["+envInit+"]")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "measurement seed, 0 for nondeterministic ["+envSeed+"]")
	fs.StringVar(&cfg.File, "file", cfg.File, "run a JSON or YAML circuit instead of the interactive menu")
	fs.IntVar(&cfg.Shots, "shots", cfg.Shots, "repetitions for -file ["+envShots+"]")
	fs.BoolVar(&cfg.Probabilities, "probabilities", cfg.Probabilities, "show probabilities alongside amplitudes")
	fs.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "print collected metrics on exit")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}

	return cfg, nil
}

func (c *config) fromEnv(getenv func(string) string) error {
	if v := getenv(envQubits); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", errConfig, envQubits, v)
		}
		c.Qubits = n
	}
	if v := getenv(envInit); v != "" {
		c.Init = v
	}
	if v := getenv(envSeed); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", errConfig, envSeed, v)
		}
		c.Seed = n
	}
	if v := getenv(envShots); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", errConfig, envShots, v)
		}
		c.Shots = n
	}

	return nil
}

func (c *config) validate() error {
	if c.Init != "" {
		if _, err := parseBits(c.Init); err != nil {
			return err
		}
		c.Qubits = len(c.Init)
	}
	if c.Qubits < 0 || c.Qubits > register.MaxQubits {
		return fmt.Errorf("%w: qubits %d out of 0..%d", errConfig, c.Qubits, register.MaxQubits)
	}
	if c.Shots <= 0 {
		return fmt.Errorf("%w: shots %d", errConfig, c.Shots)
	}

	return nil
}

// initialBits returns the register's starting state.
func (c config) initialBits() []bool {
	if c.Init == "" {
		return make([]bool, c.Qubits)
	}
	bits, _ := parseBits(c.Init)

	return bits
}

// parseBits reads a string of '0' and '1', character i being qubit i.
func parseBits(s string) ([]bool, error) {
	bits := make([]bool, len(s))
	for i, ch := range []byte(s) {
		switch ch {
		case '0':
		case '1':
			bits[i] = true
		default:
			return nil, fmt.Errorf("%w: bitstring %q: character %d", errConfig, s, i)
		}
	}

	return bits, nil
}
