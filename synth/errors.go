// SPDX-License-Identifier: MIT
// Package: lvdata/synth
//
// errors.go - sentinel errors for the synth package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Generation MUST NOT panic; validation panics are confined to option
//     constructors (WithX...).

package synth

import (
	"errors"
	"fmt"
)

// ErrConfiguration indicates that a generation config is incomplete or invalid
// (count < 1, min > max). It is never silently defaulted.
// Usage: if errors.Is(err, ErrConfiguration) { /* fix the request */ }.
var ErrConfiguration = errors.New("synth: invalid configuration")

// ErrMissingValueCount indicates Builder.Generate was called before ValueCount.
// It wraps ErrConfiguration.
var ErrMissingValueCount = fmt.Errorf("value count not set: %w", ErrConfiguration)

// ErrMissingValueRange indicates Builder.Generate was called before ValueRange.
// It wraps ErrConfiguration.
var ErrMissingValueRange = fmt.Errorf("value range not set: %w", ErrConfiguration)

// ErrUnsatisfiable indicates the combination of count, range, mode count,
// uniqueness, primality and factor mode cannot be met, either provably (checked
// before sampling) or within MaxAttempts draws.
// Usage: if errors.Is(err, ErrUnsatisfiable) { /* widen range or relax constraints */ }.
var ErrUnsatisfiable = errors.New("synth: constraints unsatisfiable")

// errRejected marks a single rejected candidate inside the retry loop.
// It never escapes Generate.
var errRejected = errors.New("synth: candidate rejected")

// Method names used as error prefixes.
const (
	methodNewConfig = "NewConfig"
	methodGenerate  = "Generate"
	methodBuild     = "Builder.Build"
)

// synthErrorf wraps err with "<method>: <formatted detail>: %w".
func synthErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
