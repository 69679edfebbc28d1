// SPDX-License-Identifier: MIT

// Random sources for measurement.
//
// The default source is the process-wide math/rand/v2 generator. Tests and
// reproducible runs substitute a seeded generator; seed 0 maps to a fixed
// default so that "no seed given" is still deterministic when a seeded source
// is asked for. DeriveSource splits one seed into independent streams (one per
// shot in a multi-shot run).

package register

import "math/rand/v2"

// Source yields uniform samples in [0, 1).
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type Source interface {
	Float64() float64
}

// defaultSeed replaces a zero seed.
const defaultSeed int64 = 1

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// GlobalSource returns the process-wide generator used when no Source is set.
func GlobalSource() Source { return globalSource{} }

// NewSeededSource returns a deterministic generator. seed == 0 uses a fixed
// default. The result is not safe for concurrent use.
func NewSeededSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// DeriveSource returns an independent deterministic stream for (seed, stream).
func DeriveSource(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewPCG(uint64(seed), mixStream(uint64(seed), stream)))
}

// mixStream is a SplitMix64 finalizer over seed^stream.
func mixStream(seed, stream uint64) uint64 {
	x := seed ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb

	return x ^ (x >> 31)
}
