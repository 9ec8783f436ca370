// SPDX-License-Identifier: MIT
// Package: lvdata/dataset
//
// stats.go - descriptive statistics over the sorted sequence.
//
// Exposed API:
//   - Mean()          -> float64
//   - Median()        -> float64
//   - FirstQuartile() -> float64   // median of s[0:m]
//   - ThirdQuartile() -> float64   // median of s[m:] (even n) or s[m+1:] (odd n)
//   - Range()         -> int
//   - Mode()          -> []int
//   - GCD(), LCM()    -> int
//   - CountMatches(probe...) -> (count, matched)
//   - Summary()       -> FiveNumber
//
// Determinism:
//   - Pure functions of the sorted sequence; fixed left-to-right folds.
//
// AI-Hints:
//   - The quartile halves are deliberately asymmetric at the boundary for even n:
//     s[m] belongs to the upper half only. Do not "fix" this into a symmetric split.

package dataset

// FiveNumber is the five-number summary drawn by a box plot.
type FiveNumber struct {
	Lowest        int     `json:"lowest" yaml:"lowest"`
	FirstQuartile float64 `json:"first_quartile" yaml:"first_quartile"`
	Median        float64 `json:"median" yaml:"median"`
	ThirdQuartile float64 `json:"third_quartile" yaml:"third_quartile"`
	Highest       int     `json:"highest" yaml:"highest"`
}

// Mean returns sum/n as a real number.
// Complexity: O(n).
func (d *Dataset) Mean() (float64, error) {
	if d.IsEmpty() {
		return 0, datasetErrorf(opMean, ErrEmptyDataset)
	}

	// float64 accumulation cannot wrap; it is exact while |sum| < 2^53.
	sum := 0.0
	for _, v := range d.values {
		sum += float64(v)
	}

	return sum / float64(len(d.values)), nil
}

// Median returns the middle element (odd n) or the average of the two central
// elements (even n).
// Complexity: O(1).
func (d *Dataset) Median() (float64, error) {
	if d.IsEmpty() {
		return 0, datasetErrorf(opMedian, ErrEmptyDataset)
	}
	return medianOf(d.values, d.middle), nil
}

// FirstQuartile returns the median of the elements strictly before the middle
// index, using a middle index recomputed for that half.
// A single-element dataset has an empty lower half and yields ErrEmptyDataset.
// Complexity: O(1).
func (d *Dataset) FirstQuartile() (float64, error) {
	if d.IsEmpty() {
		return 0, datasetErrorf(opFirstQuartile, ErrEmptyDataset)
	}

	lower := d.values[:d.middle]
	if len(lower) == 0 {
		return 0, datasetErrorf(opFirstQuartile, ErrEmptyDataset)
	}

	return medianOf(lower, MiddleIndex(len(lower))), nil
}

// ThirdQuartile returns the median of the upper half. The upper half starts at
// the middle index for even n and right after it for odd n, so the odd case
// excludes the shared middle element from both halves.
// Complexity: O(1).
func (d *Dataset) ThirdQuartile() (float64, error) {
	if d.IsEmpty() {
		return 0, datasetErrorf(opThirdQuartile, ErrEmptyDataset)
	}

	start := d.middle
	if len(d.values)%2 != 0 {
		start++
	}
	upper := d.values[start:]
	if len(upper) == 0 {
		return 0, datasetErrorf(opThirdQuartile, ErrEmptyDataset)
	}

	return medianOf(upper, MiddleIndex(len(upper))), nil
}

// Range returns Highest - Lowest, or ErrOverflow when the spread does not fit in int.
func (d *Dataset) Range() (int, error) {
	if d.IsEmpty() {
		return 0, datasetErrorf(opRange, ErrEmptyDataset)
	}

	r := d.values[len(d.values)-1] - d.values[0]
	if r < 0 {
		return 0, datasetErrorf(opRange, ErrOverflow)
	}
	return r, nil
}

// Mode returns every value whose frequency equals the maximal frequency, in
// ascending order. The result is empty when no element repeats (or the
// dataset is empty). It may hold one or many values.
// Complexity: O(n).
func (d *Dataset) Mode() []int {
	if d.IsEmpty() {
		return []int{}
	}
	return sortedModes(d.values)
}

// GCD folds the Euclidean gcd over the sequence from left to right.
// Returns ErrOverflow only when every element is 0 or math.MinInt and at
// least one is math.MinInt.
func (d *Dataset) GCD() (int, error) {
	if d.IsEmpty() {
		return 0, datasetErrorf(opGCD, ErrEmptyDataset)
	}

	var g uint
	for _, v := range d.values {
		g = gcd(g, magnitude(v))
	}

	result, ok := toInt(g)
	if !ok {
		return 0, datasetErrorf(opGCD, ErrOverflow)
	}
	return result, nil
}

// LCM folds lcm(a,b) = |a*b|/gcd(a,b) from left to right, starting with the
// first element. A zero element makes the result zero.
// Returns ErrOverflow if an intermediate value does not fit in int.
func (d *Dataset) LCM() (int, error) {
	if d.IsEmpty() {
		return 0, datasetErrorf(opLCM, ErrEmptyDataset)
	}

	result, ok := toInt(magnitude(d.values[0]))
	if !ok {
		return 0, datasetErrorf(opLCM, ErrOverflow)
	}
	for _, v := range d.values[1:] {
		if result, ok = lcm(uint(result), magnitude(v)); !ok {
			return 0, datasetErrorf(opLCM, ErrOverflow)
		}
	}

	return result, nil
}

// CountMatches counts the elements equal to any of the probe values.
// The boolean is false when nothing matched; callers must treat that as
// "no match" rather than as a count of zero. Repeated probe values count once.
// Complexity: O(n + len(probe)).
func (d *Dataset) CountMatches(probe ...int) (int, bool) {
	if d.IsEmpty() || len(probe) == 0 {
		return 0, false
	}

	wanted := make(map[int]struct{}, len(probe))
	for _, p := range probe {
		wanted[p] = struct{}{}
	}

	count := 0
	for _, v := range d.values {
		if _, ok := wanted[v]; ok {
			count++
		}
	}

	return count, count != 0
}

// Summary returns the five-number summary. Datasets with fewer than two
// elements have no quartiles and yield ErrEmptyDataset.
func (d *Dataset) Summary() (FiveNumber, error) {
	var (
		s   FiveNumber
		err error
	)

	if s.Lowest, err = d.Lowest(); err != nil {
		return FiveNumber{}, datasetErrorf(opSummary, err)
	}
	if s.Highest, err = d.Highest(); err != nil {
		return FiveNumber{}, datasetErrorf(opSummary, err)
	}
	if s.Median, err = d.Median(); err != nil {
		return FiveNumber{}, datasetErrorf(opSummary, err)
	}
	if s.FirstQuartile, err = d.FirstQuartile(); err != nil {
		return FiveNumber{}, datasetErrorf(opSummary, err)
	}
	if s.ThirdQuartile, err = d.ThirdQuartile(); err != nil {
		return FiveNumber{}, datasetErrorf(opSummary, err)
	}

	return s, nil
}

// medianOf applies the median rule to a non-empty sorted slice with middle index m.
func medianOf(sorted []int, m int) float64 {
	if len(sorted)%2 != 0 {
		return float64(sorted[m])
	}
	// Halve before adding so the sum of two large values cannot wrap.
	return float64(sorted[m-1])/2 + float64(sorted[m])/2
}
