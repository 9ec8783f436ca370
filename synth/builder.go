// SPDX-License-Identifier: MIT
// Package: lvdata/synth
//
// builder.go - chained construction surface.
//
// Contract:
//   • Setters may be called in any order and return the same *Builder.
//   • ValueCount and ValueRange are required; Build reports which one is
//     missing instead of defaulting it.
//   • Build produces an immutable Config; later setter calls do not affect
//     Configs already built.
//   • Generate = Build + synth.Generate. Each call produces a fresh dataset
//     that fully replaces whatever the caller held before.

package synth

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lvdata/dataset"
)

// Builder collects generation parameters through chained setters.
// The zero value is ready to use. A Builder is not safe for concurrent use.
type Builder struct {
	count    int
	min, max int
	hasCount bool
	hasRange bool

	opts []Option
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ValueCount sets how many values to generate (required).
func (b *Builder) ValueCount(n int) *Builder {
	b.count, b.hasCount = n, true
	return b
}

// ValueRange sets the inclusive value range (required). The bounds may be
// given in either order; the resolved range is [min(a,b), max(a,b)].
func (b *Builder) ValueRange(start, end int) *Builder {
	if start > end {
		start, end = end, start
	}
	b.min, b.max, b.hasRange = start, end, true
	return b
}

// ModeCount requests exactly k modes. Panics if k < 0.
func (b *Builder) ModeCount(k int) *Builder {
	return b.With(WithModeCount(k))
}

// Unique requires all values to be distinct.
func (b *Builder) Unique(v bool) *Builder {
	return b.With(WithUnique(v))
}

// AllowPrime controls whether primes may appear.
func (b *Builder) AllowPrime(v bool) *Builder {
	return b.With(WithAllowPrime(v))
}

// GenerateFromFactor enables factor mode.
func (b *Builder) GenerateFromFactor(v bool) *Builder {
	return b.With(WithFromFactor(v))
}

// Seed fixes the random source.
func (b *Builder) Seed(seed int64) *Builder {
	return b.With(WithSeed(seed))
}

// Rand shares an explicit random source. Panics on nil.
func (b *Builder) Rand(r *rand.Rand) *Builder {
	return b.With(WithRand(r))
}

// MaxAttempts caps the rejection loop. Panics if n < 1.
func (b *Builder) MaxAttempts(n int) *Builder {
	return b.With(WithMaxAttempts(n))
}

// Logger sets the diagnostics logger.
func (b *Builder) Logger(l logr.Logger) *Builder {
	return b.With(WithLogger(l))
}

// With appends raw options; they apply after earlier setters (last wins).
func (b *Builder) With(opts ...Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// Build validates the collected parameters into an immutable Config.
// Returns ErrMissingValueCount / ErrMissingValueRange (both ErrConfiguration)
// when a required setter was never called.
func (b *Builder) Build() (Config, error) {
	if !b.hasCount {
		return Config{}, fmt.Errorf("%s: %w", methodBuild, ErrMissingValueCount)
	}
	if !b.hasRange {
		return Config{}, fmt.Errorf("%s: %w", methodBuild, ErrMissingValueRange)
	}

	cfg, err := NewConfig(b.count, b.min, b.max, b.opts...)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return cfg, nil
}

// Generate builds the Config and synthesizes a dataset from it.
func (b *Builder) Generate(ctx context.Context) (*dataset.Dataset, error) {
	cfg, err := b.Build()
	if err != nil {
		return nil, err
	}
	return Generate(ctx, cfg)
}
