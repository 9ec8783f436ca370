// SPDX-License-Identifier: MIT
// Package: lvdata/synth
//
// sampler.go - candidate drawing and the acceptance predicate.
//
// Candidate layout (per attempt):
//   [ run: runLen copies of one uniform value | free slots: uniform draws or factor multiples ]
//
// Acceptance (all must hold):
//   • distinct > (count - runLen) / 2
//   • unique     ⇒ distinct == count
//   • !allowPrime ⇒ no prime value
//   • modeCount>0 ⇒ len(Modes(candidate)) == modeCount

package synth

import (
	"math/rand"

	"github.com/katalvlaran/lvdata/dataset"
)

// factorChance is the 1-in-N chance that the bare factor replaces one free slot.
const factorChance = 5

// minRunLength is the smallest repetition run; a run of 1 is not a repeat.
const minRunLength = 2

// sampler draws candidates for one Generate call. It owns its buffer and is
// not shared between calls.
type sampler struct {
	cfg    Config
	rng    *rand.Rand
	runLen int
	buf    []int
}

func newSampler(cfg Config, rng *rand.Rand, runLen int) *sampler {
	return &sampler{
		cfg:    cfg,
		rng:    rng,
		runLen: runLen,
		buf:    make([]int, 0, cfg.count),
	}
}

// draw fills the buffer with a fresh candidate and returns it.
// The returned slice is reused by the next draw.
func (s *sampler) draw() []int {
	values := s.buf[:0]

	if s.runLen > 0 {
		v := s.uniform(s.cfg.min, s.cfg.max)
		for i := 0; i < s.runLen; i++ {
			values = append(values, v)
		}
	}

	if s.cfg.fromFactor {
		values = s.fillFactor(values)
	} else {
		for len(values) < s.cfg.count {
			values = append(values, s.uniform(s.cfg.min, s.cfg.max))
		}
	}

	s.buf = values
	return values
}

// fillFactor appends f*k for k ∈ [2, max/f] until count slots are filled,
// then with probability 1/factorChance overwrites one free slot with f.
// The factor bounds were checked by factorBounds before sampling started.
func (s *sampler) fillFactor(values []int) []int {
	lo, hi, _ := factorBounds(s.cfg)
	f := s.uniform(lo, hi)
	kHi := s.cfg.max / f

	start := len(values)
	for len(values) < s.cfg.count {
		values = append(values, f*s.uniform(minRunLength, kHi))
	}

	if free := len(values) - start; free > 0 && s.rng.Intn(factorChance) == 0 {
		values[start+s.rng.Intn(free)] = f
	}

	return values
}

// accept reports whether candidate meets every constraint.
func (s *sampler) accept(candidate []int) bool {
	distinct := dataset.Distinct(candidate)

	// distinct > (count-runLen)/2, kept in integers.
	if 2*distinct <= s.cfg.count-s.runLen {
		return false
	}
	if s.cfg.unique && distinct != s.cfg.count {
		return false
	}
	if !s.cfg.allowPrime && dataset.HasPrime(candidate) {
		return false
	}
	if s.cfg.modeCount > 0 && len(dataset.Modes(candidate)) != s.cfg.modeCount {
		return false
	}

	return true
}

// uniform returns an integer in [lo, hi]; hi-lo+1 must be positive.
func (s *sampler) uniform(lo, hi int) int {
	return lo + int(s.rng.Int63n(int64(hi-lo)+1))
}

// factorBounds returns the inclusive interval the common factor is drawn from:
// [max(min,1), min(max/count, max/2)]. The upper bound keeps at least the
// multiplier 2 available (f*2 ≤ max). ok is false when the interval is empty.
func factorBounds(cfg Config) (lo, hi int, ok bool) {
	lo = cfg.min
	if lo < 1 {
		lo = 1
	}
	hi = cfg.max / cfg.count
	if half := cfg.max / minRunLength; half < hi {
		hi = half
	}
	return lo, hi, lo <= hi
}
