// SPDX-License-Identifier: MIT

package service

import (
	"k8s.io/utils/ptr"

	"github.com/katalvlaran/lvdata/dataset"
)

// GenerateRequest is the body of POST /v1/generate. When Preset is set, the
// preset supplies count/range/constraints and only Seed overrides it.
type GenerateRequest struct {
	Preset     string `json:"preset,omitempty"`
	Count      int    `json:"count"`
	Min        int    `json:"min"`
	Max        int    `json:"max"`
	ModeCount  int    `json:"mode_count,omitempty"`
	Unique     bool   `json:"unique,omitempty"`
	AllowPrime *bool  `json:"allow_prime,omitempty"`
	FromFactor bool   `json:"from_factor,omitempty"`
	Seed       *int64 `json:"seed,omitempty"`
	Probe      []int  `json:"probe,omitempty"`
}

// StatsRequest is the body of POST /v1/stats.
type StatsRequest struct {
	Values []int `json:"values"`
	Probe  []int `json:"probe,omitempty"`
}

// DatasetResponse is returned by both endpoints.
type DatasetResponse struct {
	ID      string `json:"id"`
	Values  []int  `json:"values"`
	Stats   Stats  `json:"stats"`
	Matches *int   `json:"matches"`
}

// Stats is the serialisable statistics view of a dataset. Fields that are
// undefined for the dataset (quartiles of a single value, LCM overflow) are nil.
type Stats struct {
	Count         int      `json:"count" yaml:"count"`
	MiddleIndex   int      `json:"middle_index" yaml:"middle_index"`
	Lowest        *int     `json:"lowest" yaml:"lowest"`
	Highest       *int     `json:"highest" yaml:"highest"`
	Mean          *float64 `json:"mean" yaml:"mean"`
	Median        *float64 `json:"median" yaml:"median"`
	FirstQuartile *float64 `json:"first_quartile" yaml:"first_quartile"`
	ThirdQuartile *float64 `json:"third_quartile" yaml:"third_quartile"`
	Range         *int     `json:"range" yaml:"range"`
	Mode          []int    `json:"mode" yaml:"mode"`
	GCD           *int     `json:"gcd" yaml:"gcd"`
	LCM           *int     `json:"lcm" yaml:"lcm"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Describe computes every statistic of ds, leaving undefined ones nil.
func Describe(ds *dataset.Dataset) Stats {
	s := Stats{
		Count:       ds.Len(),
		MiddleIndex: ds.MiddleIndex(),
		Mode:        ds.Mode(),
	}

	s.Lowest = optional(ds.Lowest())
	s.Highest = optional(ds.Highest())
	s.Mean = optional(ds.Mean())
	s.Median = optional(ds.Median())
	s.FirstQuartile = optional(ds.FirstQuartile())
	s.ThirdQuartile = optional(ds.ThirdQuartile())
	s.Range = optional(ds.Range())
	s.GCD = optional(ds.GCD())
	s.LCM = optional(ds.LCM())

	return s
}

// Matches runs CountMatches and maps "no match" to nil.
func Matches(ds *dataset.Dataset, probe []int) *int {
	if n, ok := ds.CountMatches(probe...); ok {
		return ptr.To(n)
	}
	return nil
}

func optional[T any](v T, err error) *T {
	if err != nil {
		return nil
	}
	return ptr.To(v)
}
