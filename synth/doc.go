// SPDX-License-Identifier: MIT

// Package synth generates integer datasets that satisfy several constraints
// at once, by rejection sampling with a bounded number of attempts.
//
// 🚀 What does it build?
//
//	A *dataset.Dataset of exactly ValueCount integers drawn from the
//	inclusive ValueRange, such that:
//	  • more than half of the values are distinct
//	  • Unique       ⇒ all values are distinct
//	  • !AllowPrime  ⇒ no value is prime
//	  • ModeCount=k  ⇒ exactly k values tie for the highest frequency
//	  • FromFactor   ⇒ values are multiples of one random common factor
//
// ⚙️ Usage:
//
//	cfg, err := synth.NewConfig(10, 1, 50,
//	    synth.WithModeCount(1),
//	    synth.WithAllowPrime(false),
//	    synth.WithSeed(42),
//	)
//	ds, err := synth.Generate(ctx, cfg)
//
//	// or, chained:
//	ds, err := synth.NewBuilder().ValueCount(10).ValueRange(1, 50).ModeCount(1).Generate(ctx)
//
// Determinism:
//
//	Same Config (including WithSeed) ⇒ identical dataset. Without a seed every
//	call uses its own freshly seeded generator; there is no global RNG state.
//
// Errors:
//   - ErrConfiguration (ErrMissingValueCount, ErrMissingValueRange) - incomplete or invalid config.
//   - ErrUnsatisfiable - constraints cannot be met (detected up front, or after MaxAttempts draws).
//   - Context errors   - ctx cancelled or past its deadline while sampling.
//
// A failed Generate never returns a partial dataset.
package synth
