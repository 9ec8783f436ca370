// SPDX-License-Identifier: MIT

package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvdata/synth"
)

const metricsNamespace = "lvdata"

// Metrics holds the service collectors. It implements synth.Observer so the
// sampler reports outcomes and attempt counts directly.
type Metrics struct {
	generations *prometheus.CounterVec
	attempts    prometheus.Histogram
	requests    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generations_total",
			Help:      "Dataset generations by outcome.",
		}, []string{"outcome"}),
		attempts: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "generation_attempts",
			Help:      "Candidates drawn per generation.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status code.",
		}, []string{"endpoint", "code"}),
	}
	reg.MustRegister(m.generations, m.attempts, m.requests)
	return m
}

// ObserveGeneration implements synth.Observer.
func (m *Metrics) ObserveGeneration(outcome synth.Outcome, attempts int) {
	m.generations.WithLabelValues(string(outcome)).Inc()
	if attempts > 0 {
		m.attempts.Observe(float64(attempts))
	}
}
