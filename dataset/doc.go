// SPDX-License-Identifier: MIT

// Package dataset holds a sorted, read-only collection of integers together
// with the descriptive statistics consumed by diagram renderers (box plots,
// data rows, shaded rectangles).
//
// 🚀 What is a Dataset?
//
//	A Dataset is an ascending integer sequence plus its middle index.
//	It is created once, either from literal values (New) or by the
//	synth package, and never mutated afterwards.
//
// ✨ Statistics:
//   - Mean                 - real-valued, no rounding
//   - Median               - s[m] (odd n) or (s[m-1]+s[m])/2 (even n)
//   - FirstQuartile        - median of s[0:m]
//   - ThirdQuartile        - median of s[m:] (even n) or s[m+1:] (odd n)
//   - Range, Lowest, Highest
//   - Mode                 - every value tied for the highest frequency (empty if nothing repeats)
//   - GCD, LCM             - left folds over the sequence
//   - CountMatches         - occurrences of probe values, with an explicit "no match" flag
//
// Middle index convention:
//
//	m = n/2 for every n. For odd n it addresses the single middle element;
//	for even n the two central elements are s[m-1] and s[m].
//
//	  n=7: [1 3 3 (6) 7 8 9]      m=3, median=6
//	  n=8: [1 2 3 (4 5) 6 7 8]    m=4, median=(4+5)/2=4.5
//
// Errors:
//   - ErrEmptyDataset - statistics requested on a dataset (or quartile half) with no elements.
//   - ErrOverflow     - Range, GCD or LCM exceeds the int range.
//
// Usage:
//
//	ds := dataset.New([]int{9, 1, 3, 8, 3, 7, 6})
//	med, _ := ds.Median()        // 6
//	q1, _ := ds.FirstQuartile()  // 3
//	n, ok := ds.CountMatches(3)  // 2, true
package dataset
