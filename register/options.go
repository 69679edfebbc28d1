// SPDX-License-Identifier: MIT

package register

import (
	"fmt"
	"math"
)

// DefaultTolerance bounds per-amplitude differences in Equal and the
// normalization invariant.
const DefaultTolerance = 1e-8

// Option configures a Register.
type Option func(*Options)

// Options holds the effective configuration after all Option funcs ran.
type Options struct {
	src Source
	tol float64
}

func defaultOptions() Options {
	return Options{src: globalSource{}, tol: DefaultTolerance}
}

// WithSource sets the random source used by Measure.
// Panics on nil (programmer error).
func WithSource(src Source) Option {
	if src == nil {
		panic("register: WithSource(nil)")
	}

	return func(o *Options) { o.src = src }
}

// WithTolerance sets the comparison tolerance. Panics when tol is not a
// positive finite number.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(fmt.Sprintf("register: WithTolerance(%v): must be positive and finite", tol))
	}

	return func(o *Options) { o.tol = tol }
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
