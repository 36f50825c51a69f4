// Package chform - RNG policy for Measure.
//
// Measure draws its coin flip from a caller-supplied *rand.Rand. There is no
// hidden time-based source: a nil generator falls back to a fixed seed, so a
// program without an explicit generator is reproducible.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
package chform

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0 or a nil generator.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// coin draws one uniform boolean from rng (or the default stream when nil).
func coin(rng *rand.Rand) bool {
	r := rng
	if r == nil {
		r = NewRand(0)
	}

	return r.Intn(2) == 1
}
