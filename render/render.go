// SPDX-License-Identifier: MIT

// Package render prints register contents for humans: one line per basis
// index, labelled with its N-digit binary form (most significant qubit first),
// followed by the amplitude or the probability.
package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/qsim/register"
)

// Label returns the zero-padded binary label of index i in an n-qubit register.
// n == 0 yields "".
func Label(i, n int) string {
	if n == 0 {
		return ""
	}

	return fmt.Sprintf("%0*b", n, i)
}

// State writes "label: amplitude" for every basis index.
func State(w io.Writer, r *register.Register) error {
	for i, a := range r.State() {
		if _, err := fmt.Fprintf(w, "|%s⟩: %v\n", Label(i, r.Size()), a); err != nil {
			return fmt.Errorf("render: State: %w", err)
		}
	}

	return nil
}

// Probabilities writes "label: percent" for every basis index. When nonzero is
// true, indices with zero probability are skipped.
func Probabilities(w io.Writer, r *register.Register, nonzero bool) error {
	for i, p := range r.Probabilities() {
		if nonzero && p == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "|%s⟩: %6.2f%%\n", Label(i, r.Size()), 100*p); err != nil {
			return fmt.Errorf("render: Probabilities: %w", err)
		}
	}

	return nil
}

// Histogram writes shot counts in the order of keys.
func Histogram(w io.Writer, keys []string, counts map[string]int, shots int) error {
	for _, k := range keys {
		c := counts[k]
		pct := 0.0
		if shots > 0 {
			pct = 100 * float64(c) / float64(shots)
		}
		if _, err := fmt.Fprintf(w, "%s: %d (%.2f%%)\n", k, c, pct); err != nil {
			return fmt.Errorf("render: Histogram: %w", err)
		}
	}

	return nil
}
