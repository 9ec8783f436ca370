// SPDX-License-Identifier: MIT
// Package: lvdata/synth
//
// config.go - immutable generation config and deterministic defaults.
//
// Design:
//   • Config is the single source of truth for all generation knobs.
//   • It can only be obtained complete and valid from NewConfig (or Builder.Build).
//   • It is passed by VALUE into Generate.
//
// Deterministic defaults:
//   • modeCount   = 0        (no mode constraint)
//   • unique      = false
//   • allowPrime  = true
//   • fromFactor  = false
//   • maxAttempts = DefaultMaxAttempts
//   • rng         = per-call, time-seeded (unless WithSeed/WithRand)
//   • logger      = logr.Discard()

package synth

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
)

// DefaultMaxAttempts bounds the rejection loop when WithMaxAttempts is not given.
const DefaultMaxAttempts = 100_000

// Config is a validated, immutable generation request.
type Config struct {
	count      int
	min, max   int
	modeCount  int
	unique     bool
	allowPrime bool
	fromFactor bool

	maxAttempts int
	seed        int64
	seeded      bool
	rng         *rand.Rand

	logger   logr.Logger
	observer Observer
}

// NewConfig validates count and the inclusive range [min, max] and applies opts
// in order (last wins). Returns ErrConfiguration for count < 1, min > max, or a
// range wider than int can address.
// Complexity: O(len(opts)).
func NewConfig(count, min, max int, opts ...Option) (Config, error) {
	cfg := Config{
		count:       count,
		min:         min,
		max:         max,
		allowPrime:  true,
		maxAttempts: DefaultMaxAttempts,
		logger:      logr.Discard(),
		observer:    nopObserver{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", methodNewConfig, err)
	}

	return cfg, nil
}

// ValueCount returns the number of values to generate.
func (c Config) ValueCount() int { return c.count }

// ValueRange returns the resolved inclusive range.
func (c Config) ValueRange() (min, max int) { return c.min, c.max }

// ModeCount returns the requested mode-set size (0 = unconstrained).
func (c Config) ModeCount() int { return c.modeCount }

// Unique reports whether all values must be distinct.
func (c Config) Unique() bool { return c.unique }

// AllowPrime reports whether prime values may appear.
func (c Config) AllowPrime() bool { return c.allowPrime }

// FromFactor reports whether factor mode is enabled.
func (c Config) FromFactor() bool { return c.fromFactor }

// MaxAttempts returns the rejection-loop ceiling.
func (c Config) MaxAttempts() int { return c.maxAttempts }

// Seed returns the fixed seed, if one was set.
func (c Config) Seed() (int64, bool) { return c.seed, c.seeded }

// validate checks the structural invariants every Generate relies on.
// The zero Config fails here with count < 1.
func (c Config) validate() error {
	if c.count < 1 {
		return fmt.Errorf("value count %d < 1: %w", c.count, ErrConfiguration)
	}
	if c.min > c.max {
		return fmt.Errorf("value range [%d,%d] has min > max: %w", c.min, c.max, ErrConfiguration)
	}
	// width-1 must fit in int so rng.Int63n(width) is well defined.
	if span := c.max - c.min; span < 0 || span == math.MaxInt {
		return fmt.Errorf("value range [%d,%d] too wide: %w", c.min, c.max, ErrConfiguration)
	}
	if c.maxAttempts < 1 {
		return fmt.Errorf("max attempts %d < 1: %w", c.maxAttempts, ErrConfiguration)
	}
	return nil
}

// width is the number of integers in [min, max].
func (c Config) width() int {
	return c.max - c.min + 1
}

// random resolves the generator for one Generate call.
func (c Config) random() *rand.Rand {
	switch {
	case c.rng != nil:
		return c.rng
	case c.seeded:
		return rand.New(rand.NewSource(c.seed))
	default:
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// log returns the configured logger; the zero Config logs nowhere.
func (c Config) log() logr.Logger {
	if c.logger.GetSink() == nil {
		return logr.Discard()
	}
	return c.logger
}

// notify returns the configured observer; the zero Config observes nothing.
func (c Config) notify() Observer {
	if c.observer == nil {
		return nopObserver{}
	}
	return c.observer
}
