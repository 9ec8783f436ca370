// SPDX-License-Identifier: MIT
// Package: lvdata/dataset
//
// dataset.go - construction and the read-only view.
//
// Contract:
//   • New copies its input, sorts ascending and computes the middle index once.
//   • No method mutates the receiver; Values returns a copy.
//   • Literal values are not range-checked (only synthesized data carries a range).

package dataset

import (
	"slices"
)

// Dataset is an ascending integer sequence with a precomputed middle index.
// The zero value is an empty dataset.
type Dataset struct {
	values []int
	middle int
}

// New builds a Dataset from literal values. The input slice is not retained
// or modified. Input order is irrelevant: the result is sorted ascending.
// Complexity: O(n log n) time, O(n) space.
func New(values []int) *Dataset {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return &Dataset{
		values: sorted,
		middle: MiddleIndex(len(sorted)),
	}
}

// MiddleIndex returns the split index for a sequence of length n.
// For odd n it is the index of the single middle element; for even n the
// two central elements are at MiddleIndex(n)-1 and MiddleIndex(n).
func MiddleIndex(n int) int {
	return n / 2
}

// Values returns a copy of the sorted sequence.
func (d *Dataset) Values() []int {
	if d == nil {
		return nil
	}
	return slices.Clone(d.values)
}

// Len returns the number of elements.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.values)
}

// MiddleIndex returns the precomputed middle index of the sequence.
func (d *Dataset) MiddleIndex() int {
	if d == nil {
		return 0
	}
	return d.middle
}

// IsEmpty reports whether the dataset has no elements.
func (d *Dataset) IsEmpty() bool {
	return d.Len() == 0
}

// Lowest returns the smallest element.
func (d *Dataset) Lowest() (int, error) {
	if d.IsEmpty() {
		return 0, datasetErrorf(opLowest, ErrEmptyDataset)
	}
	return d.values[0], nil
}

// Highest returns the largest element.
func (d *Dataset) Highest() (int, error) {
	if d.IsEmpty() {
		return 0, datasetErrorf(opHighest, ErrEmptyDataset)
	}
	return d.values[len(d.values)-1], nil
}
