// SPDX-License-Identifier: MIT
// Package: lvdata/synth
//
// options.go - functional options for generation configs.
//
// Contract (strict):
//   • Options are functional (type Option func(*Config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through Config.
//
// AI-Hints:
//   • Prefer WithSeed in tests and fixtures: each Generate call re-seeds, so the
//     same Config yields the same dataset every time.
//   • WithRand shares one stream across calls (successive datasets differ).

package synth

import (
	"math/rand"

	"github.com/go-logr/logr"
)

// Option customizes a Config before it is validated by NewConfig.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*Config)

// WithModeCount requests exactly k values tied for the highest frequency.
// k = 0 means "no mode constraint". Panics if k < 0.
func WithModeCount(k int) Option {
	if k < 0 {
		panic("synth: WithModeCount(k<0)")
	}
	return func(c *Config) {
		c.modeCount = k
	}
}

// WithUnique requires every generated value to be distinct.
func WithUnique(unique bool) Option {
	return func(c *Config) {
		c.unique = unique
	}
}

// WithAllowPrime controls whether prime values may appear (default true).
func WithAllowPrime(allow bool) Option {
	return func(c *Config) {
		c.allowPrime = allow
	}
}

// WithFromFactor fills the free slots with multiples of one random factor.
func WithFromFactor(fromFactor bool) Option {
	return func(c *Config) {
		c.fromFactor = fromFactor
	}
}

// WithSeed fixes the random source: every Generate call starts a new
// generator from this seed, so identical configs give identical datasets.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.seed, c.seeded = seed, true
		c.rng = nil
	}
}

// WithRand provides an explicit RNG shared across Generate calls.
// Panics on nil; prefer WithSeed for reproducible runs. Not safe for
// concurrent Generate calls on the same *rand.Rand.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("synth: WithRand(nil)")
	}
	return func(c *Config) {
		c.rng = r
		c.seeded = false
	}
}

// WithMaxAttempts caps the number of sampled candidates before Generate gives
// up with ErrUnsatisfiable. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("synth: WithMaxAttempts(n<1)")
	}
	return func(c *Config) {
		c.maxAttempts = n
	}
}

// WithLogger sets the logger used for generation diagnostics (V(1) and up).
func WithLogger(l logr.Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}

// WithObserver registers an Observer notified once per Generate call.
// Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("synth: WithObserver(nil)")
	}
	return func(c *Config) {
		c.observer = o
	}
}
