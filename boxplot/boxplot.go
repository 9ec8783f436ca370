// SPDX-License-Identifier: MIT
// Package: lvdata/boxplot
//
// boxplot.go - data model behind a box-and-whisker diagram: the dataset, the
// grid range its axis spans, and the five-number summary. Drawing is left to
// the renderer.
//
// Contract:
//   • FromValues: grid = [lowest - padding, highest + padding].
//   • Generate:   values are synthesized inside the value range, which
//     defaults to the grid range and must lie within it.
//   • A grid never spans more than MaxGridLines lines.
//   • A Plot is immutable once returned.

// Package boxplot derives box-plot inputs (grid range, five-number summary)
// from literal or synthesized datasets.
package boxplot

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvdata/dataset"
	"github.com/katalvlaran/lvdata/synth"
)

// ErrInvalidGrid indicates a negative padding, an inverted grid, a grid with
// more than MaxGridLines lines, or a value range outside the grid.
var ErrInvalidGrid = errors.New("boxplot: invalid grid")

// MaxGridLines caps the number of grid lines a Plot may span.
const MaxGridLines = 1 << 16

// Plot is the renderer-facing view of a box plot.
type Plot struct {
	ds       *dataset.Dataset
	gridMin  int
	gridMax  int
	valueMin int
	valueMax int
	summary  dataset.FiveNumber
}

// Option customizes Generate.
type Option func(*options)

type options struct {
	valueMin, valueMax int
	hasValueRange      bool
	synthOpts          []synth.Option
}

// WithValueRange narrows the range values are drawn from, leaving padding
// rows on the grid. Bounds may be given in either order.
func WithValueRange(start, end int) Option {
	if start > end {
		start, end = end, start
	}
	return func(o *options) {
		o.valueMin, o.valueMax, o.hasValueRange = start, end, true
	}
}

// WithSynth forwards generation options (seed, mode count, ...) to synth.
func WithSynth(opts ...synth.Option) Option {
	return func(o *options) {
		o.synthOpts = append(o.synthOpts, opts...)
	}
}

// FromValues builds a Plot from literal values. The grid spans the data
// extremes widened by padding on both sides.
func FromValues(values []int, padding int) (*Plot, error) {
	if padding < 0 {
		return nil, fmt.Errorf("FromValues: padding %d < 0: %w", padding, ErrInvalidGrid)
	}

	ds := dataset.New(values)
	summary, err := ds.Summary()
	if err != nil {
		return nil, fmt.Errorf("FromValues: %w", err)
	}

	if summary.Lowest < math.MinInt+padding || summary.Highest > math.MaxInt-padding {
		return nil, fmt.Errorf("FromValues: padding %d leaves the int range: %w", padding, ErrInvalidGrid)
	}
	gridMin, gridMax := summary.Lowest-padding, summary.Highest+padding
	if err := checkGrid(gridMin, gridMax); err != nil {
		return nil, fmt.Errorf("FromValues: %w", err)
	}

	return &Plot{
		ds:       ds,
		gridMin:  gridMin,
		gridMax:  gridMax,
		valueMin: summary.Lowest,
		valueMax: summary.Highest,
		summary:  summary,
	}, nil
}

// Generate synthesizes count values for a grid spanning [gridMin, gridMax].
func Generate(ctx context.Context, count, gridMin, gridMax int, opts ...Option) (*Plot, error) {
	if err := checkGrid(gridMin, gridMax); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	o := options{valueMin: gridMin, valueMax: gridMax}
	for _, opt := range opts {
		opt(&o)
	}
	if o.valueMin < gridMin || o.valueMax > gridMax {
		return nil, fmt.Errorf("Generate: value range [%d,%d] outside grid [%d,%d]: %w",
			o.valueMin, o.valueMax, gridMin, gridMax, ErrInvalidGrid)
	}

	cfg, err := synth.NewConfig(count, o.valueMin, o.valueMax, o.synthOpts...)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	ds, err := synth.Generate(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	summary, err := ds.Summary()
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	return &Plot{
		ds:       ds,
		gridMin:  gridMin,
		gridMax:  gridMax,
		valueMin: o.valueMin,
		valueMax: o.valueMax,
		summary:  summary,
	}, nil
}

// checkGrid rejects inverted grids and grids with more than MaxGridLines lines.
func checkGrid(gridMin, gridMax int) error {
	if gridMin > gridMax {
		return fmt.Errorf("grid [%d,%d] inverted: %w", gridMin, gridMax, ErrInvalidGrid)
	}
	// A wrapped difference is negative.
	if span := gridMax - gridMin; span < 0 || span >= MaxGridLines {
		return fmt.Errorf("grid [%d,%d] exceeds %d lines: %w", gridMin, gridMax, MaxGridLines, ErrInvalidGrid)
	}
	return nil
}

// Dataset returns the underlying dataset.
func (p *Plot) Dataset() *dataset.Dataset { return p.ds }

// GridRange returns the inclusive axis range.
func (p *Plot) GridRange() (min, max int) { return p.gridMin, p.gridMax }

// ValueRange returns the range values were drawn from (or observed in).
func (p *Plot) ValueRange() (min, max int) { return p.valueMin, p.valueMax }

// FiveNumber returns lowest, Q1, median, Q3 and highest.
func (p *Plot) FiveNumber() dataset.FiveNumber { return p.summary }

// GridLines returns one label per grid row, bottom to top.
func (p *Plot) GridLines() []int {
	lines := make([]int, 0, p.gridMax-p.gridMin+1)
	for v := p.gridMin; v <= p.gridMax; v++ {
		lines = append(lines, v)
	}
	return lines
}
