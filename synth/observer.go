// SPDX-License-Identifier: MIT
// Package: lvdata/synth

package synth

// Outcome classifies how a Generate call ended.
type Outcome string

// Generate outcomes reported to an Observer.
const (
	OutcomeAccepted      Outcome = "accepted"
	OutcomeUnsatisfiable Outcome = "unsatisfiable"
	OutcomeCancelled     Outcome = "cancelled"
	OutcomeInvalid       Outcome = "invalid"
)

// Observer receives one notification per Generate call with the outcome and
// the number of candidates drawn. Implementations must be safe for concurrent
// use when a Config is shared between goroutines.
type Observer interface {
	ObserveGeneration(outcome Outcome, attempts int)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(outcome Outcome, attempts int)

// ObserveGeneration calls f(outcome, attempts).
func (f ObserverFunc) ObserveGeneration(outcome Outcome, attempts int) {
	f(outcome, attempts)
}

type nopObserver struct{}

func (nopObserver) ObserveGeneration(Outcome, int) {}
