// SPDX-License-Identifier: MIT
// Package: lvdata/dataset
//
// errors.go - sentinel errors for the dataset package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Methods attach context as "<Op>: <detail>: %w".

package dataset

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset indicates that a statistic was requested on zero elements.
// Mean, median, quartiles, range, extrema, GCD and LCM are undefined there.
var ErrEmptyDataset = errors.New("dataset: empty dataset")

// ErrOverflow indicates that a result (Range, GCD, LCM) does not fit in int.
var ErrOverflow = errors.New("dataset: integer overflow")

// Operation names used as error prefixes.
const (
	opMean          = "Mean"
	opMedian        = "Median"
	opFirstQuartile = "FirstQuartile"
	opThirdQuartile = "ThirdQuartile"
	opRange         = "Range"
	opLowest        = "Lowest"
	opHighest       = "Highest"
	opGCD           = "GCD"
	opLCM           = "LCM"
	opSummary       = "Summary"
)

// datasetErrorf prefixes err with the operation name, keeping err visible to errors.Is.
func datasetErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
