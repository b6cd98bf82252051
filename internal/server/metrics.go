package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of one server.
type Metrics struct {
	solves     *prometheus.CounterVec
	solveMoves prometheus.Histogram
	solveTime  prometheus.Histogram
	requests   *prometheus.CounterVec
	registry   *prometheus.Registry
}

// NewMetrics creates the collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cubecipher",
				Name:      "solves_total",
				Help:      "Total number of solve requests by outcome",
			},
			[]string{"outcome"},
		),
		solveMoves: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "cubecipher",
				Name:      "solution_moves",
				Help:      "Length of returned solutions in moves",
				Buckets:   prometheus.LinearBuckets(0, 25, 12),
			},
		),
		solveTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "cubecipher",
				Name:      "solve_duration_seconds",
				Help:      "Time spent in the solver",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cubecipher",
				Name:      "http_requests_total",
				Help:      "HTTP requests by route and status code",
			},
			[]string{"route", "code"},
		),
	}

	registry.MustRegister(m.solves, m.solveMoves, m.solveTime, m.requests)
	return m
}

// RecordSolve records one solver run.
func (m *Metrics) RecordSolve(outcome string, moves int, d time.Duration) {
	m.solves.WithLabelValues(outcome).Inc()
	m.solveTime.Observe(d.Seconds())
	if outcome == "solved" {
		m.solveMoves.Observe(float64(moves))
	}
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		Registry: m.registry,
	})
}

// Registry exposes the registry for tests and embedding.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
