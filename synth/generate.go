// SPDX-License-Identifier: MIT
// Package: lvdata/synth
//
// generate.go - Generate: feasibility checks + bounded rejection sampling.
//
// Canonical model:
//   1. Validate cfg (ErrConfiguration).
//   2. Resolve the RNG (seeded per call, shared, or time-seeded).
//   3. With a mode constraint, draw the run length L ONCE, before sampling.
//   4. Reject provably unsatisfiable requests up front (ErrUnsatisfiable).
//   5. Draw whole candidates until one is accepted, at most MaxAttempts times;
//      no incremental repair. The loop is driven by backoff.Retry with a zero
//      back-off so it honours ctx cancellation between attempts.
//   6. Sort, compute the middle index (dataset.New), return.
//
// Determinism:
//   • Fixed draw order per attempt → identical outcomes for the same seed.
//   • Either a valid dataset is produced, or an error; never a partial result.

package synth

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/cenkalti/backoff/v5"

	"github.com/katalvlaran/lvdata/dataset"
)

// Generate synthesizes a dataset satisfying every constraint in cfg.
//
// Errors:
//   - ErrConfiguration: cfg is the zero value or otherwise invalid.
//   - ErrUnsatisfiable: infeasible request, or MaxAttempts candidates rejected.
//   - ctx.Err() (wrapped): cancelled or deadline exceeded while sampling.
//
// Complexity: O(MaxAttempts · count) worst case; O(count) per attempt.
func Generate(ctx context.Context, cfg Config) (*dataset.Dataset, error) {
	log := cfg.log().WithName("synth")
	obs := cfg.notify()

	if err := cfg.validate(); err != nil {
		obs.ObserveGeneration(OutcomeInvalid, 0)
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	rng := cfg.random()

	runLen, err := planRun(cfg, rng)
	if err == nil {
		err = checkFeasible(cfg, runLen)
	}
	if err != nil {
		obs.ObserveGeneration(OutcomeUnsatisfiable, 0)
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	if err := ctx.Err(); err != nil {
		obs.ObserveGeneration(OutcomeCancelled, 0)
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	s := newSampler(cfg, rng, runLen)
	attempts := 0
	values, err := backoff.Retry(ctx, func() ([]int, error) {
		attempts++
		candidate := s.draw()
		if !s.accept(candidate) {
			return nil, errRejected
		}
		return candidate, nil
	},
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(uint(cfg.maxAttempts)),
		backoff.WithMaxElapsedTime(0),
	)

	switch {
	case err == nil:
	case errors.Is(err, errRejected):
		obs.ObserveGeneration(OutcomeUnsatisfiable, attempts)
		log.V(1).Info("gave up sampling", "attempts", attempts, "count", cfg.count,
			"min", cfg.min, "max", cfg.max, "modeCount", cfg.modeCount)
		return nil, synthErrorf(methodGenerate, ErrUnsatisfiable,
			"no candidate accepted after %d attempts", attempts)
	default:
		obs.ObserveGeneration(OutcomeCancelled, attempts)
		return nil, fmt.Errorf("%s: after %d attempts: %w", methodGenerate, attempts, err)
	}

	obs.ObserveGeneration(OutcomeAccepted, attempts)
	log.V(1).Info("dataset generated", "attempts", attempts, "count", cfg.count, "runLength", runLen)

	// dataset.New copies, so the sampler buffer never escapes.
	return dataset.New(values), nil
}

// planRun draws the repetition run length once per Generate call.
// Without a mode constraint there is no run (0). With k modes the run length
// is uniform in [2, hi] where hi is the largest L such that
//   - L ≤ count-1                      (at least one free slot),
//   - k·L ≤ count                      (every tied mode can reach frequency L),
//   - 2·(k + count - k·L) > count - L  (enough free slots stay distinct).
//
// For k = 1 this is exactly [2, count-1]. For k ≥ 2 the interval is narrowed
// on purpose: any larger L could never yield an accepted candidate.
func planRun(cfg Config, rng *rand.Rand) (int, error) {
	if cfg.modeCount == 0 {
		return 0, nil
	}

	k := cfg.modeCount
	hi := cfg.count - 1
	if byModes := cfg.count / k; byModes < hi {
		hi = byModes
	}
	if byDistinct := (2*k + cfg.count - 1) / (2*k - 1); byDistinct < hi {
		hi = byDistinct
	}
	if hi < minRunLength {
		return 0, fmt.Errorf("%d values cannot hold %d modes of at least %d copies: %w",
			cfg.count, k, minRunLength, ErrUnsatisfiable)
	}

	return minRunLength + rng.Intn(hi-minRunLength+1), nil
}

// checkFeasible rejects requests that no candidate can ever satisfy.
func checkFeasible(cfg Config, runLen int) error {
	width := cfg.width()

	switch {
	case cfg.unique && cfg.modeCount > 0:
		return fmt.Errorf("unique values cannot have %d modes: %w", cfg.modeCount, ErrUnsatisfiable)
	case cfg.unique && cfg.count > width:
		return fmt.Errorf("%d unique values do not fit in [%d,%d]: %w",
			cfg.count, cfg.min, cfg.max, ErrUnsatisfiable)
	case cfg.modeCount > width:
		return fmt.Errorf("%d modes need %d distinct values, range [%d,%d] has %d: %w",
			cfg.modeCount, cfg.modeCount, cfg.min, cfg.max, width, ErrUnsatisfiable)
	case width <= (cfg.count-runLen)/2:
		return fmt.Errorf("range [%d,%d] cannot supply more than %d distinct values: %w",
			cfg.min, cfg.max, (cfg.count-runLen)/2, ErrUnsatisfiable)
	}

	if cfg.fromFactor {
		if _, _, ok := factorBounds(cfg); !ok {
			return fmt.Errorf("no common factor fits %d values in [%d,%d]: %w",
				cfg.count, cfg.min, cfg.max, ErrUnsatisfiable)
		}
	}

	return nil
}
