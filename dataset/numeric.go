// SPDX-License-Identifier: MIT
// Package: lvdata/dataset
//
// numeric.go - integer helpers shared with the synthesizer
// (primality, gcd/lcm, frequency analysis).

package dataset

import (
	"math"
	"slices"
)

// IsPrime reports whether v is a prime number. Values below 2 are not prime.
// Complexity: O(√v).
func IsPrime(v int) bool {
	if v < 2 {
		return false
	}
	if v < 4 {
		return true
	}
	if v%2 == 0 || v%3 == 0 {
		return false
	}
	for i := 5; i <= v/i; i += 6 {
		if v%i == 0 || v%(i+2) == 0 {
			return false
		}
	}
	return true
}

// HasPrime reports whether any of values is prime.
func HasPrime(values []int) bool {
	return slices.ContainsFunc(values, IsPrime)
}

// GCD returns the greatest common divisor of |a| and |b| (Euclid).
// GCD(0, 0) is 0. The boolean is false when the result does not fit in int,
// which happens only for GCD(math.MinInt, math.MinInt) and GCD(math.MinInt, 0).
func GCD(a, b int) (int, bool) {
	return toInt(gcd(magnitude(a), magnitude(b)))
}

// LCM returns the least common multiple of |a| and |b|, or 0 if either is 0.
// The boolean is false on int overflow.
func LCM(a, b int) (int, bool) {
	return lcm(magnitude(a), magnitude(b))
}

func gcd(a, b uint) uint {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b uint) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	q := a / gcd(a, b)
	if q > math.MaxInt/b {
		return 0, false
	}
	return toInt(q * b)
}

// Distinct returns the number of distinct values.
func Distinct(values []int) int {
	seen := make(map[int]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// Modes returns the values tied for the highest frequency in ascending order;
// the result is empty when the highest frequency is 1. values need not be sorted.
// Complexity: O(n + k log k), k = number of modes.
func Modes(values []int) []int {
	return sortedModes(values)
}

func sortedModes(values []int) []int {
	counts := make(map[int]int, len(values))
	maxFreq := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > maxFreq {
			maxFreq = counts[v]
		}
	}

	modes := []int{}
	if maxFreq <= 1 {
		return modes
	}
	for v, c := range counts {
		if c == maxFreq {
			modes = append(modes, v)
		}
	}
	slices.Sort(modes)

	return modes
}

// magnitude returns |v|; math.MinInt maps to its true magnitude 1<<63.
func magnitude(v int) uint {
	if v < 0 {
		return uint(-(v + 1)) + 1
	}
	return uint(v)
}

func toInt(u uint) (int, bool) {
	if u > math.MaxInt {
		return 0, false
	}
	return int(u), true
}
