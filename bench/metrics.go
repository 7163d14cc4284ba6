// SPDX-License-Identifier: MIT

package bench

import (
	"strconv"

	"github.com/katalvlaran/matpar/perf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "matpar"

// Collector exposes sweep results as Prometheus metrics.
// A nil *Collector is valid and records nothing.
type Collector struct {
	// RunDuration measures parallel run wall time.
	// Labels: backend, workers
	RunDuration *prometheus.HistogramVec

	// RunFailures counts failed cells.
	// Labels: backend
	RunFailures *prometheus.CounterVec

	// Speedup holds the last measured speedup per cell.
	// Labels: backend, workers
	Speedup *prometheus.GaugeVec

	// BaselineSeconds holds the last sequential baseline time.
	BaselineSeconds prometheus.Gauge
}

// NewCollector registers the sweep metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of one parallel multiply.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		}, []string{"backend", "workers"}),
		RunFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "run_failures_total",
			Help:      "Sweep cells that failed.",
		}, []string{"backend"}),
		Speedup: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "speedup",
			Help:      "Last measured speedup over the sequential baseline.",
		}, []string{"backend", "workers"}),
		BaselineSeconds: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "baseline_seconds",
			Help:      "Wall time of the last sequential baseline.",
		}),
	}
}

func (c *Collector) observeBaseline(secs float64) {
	if c == nil {
		return
	}
	c.BaselineSeconds.Set(secs)
}

// observeRun records one cell. Undefined speedups leave the gauge untouched.
func (c *Collector) observeRun(r Run, speedup perf.Metric) {
	if c == nil {
		return
	}
	backend, workers := r.Backend.String(), strconv.Itoa(r.Workers)
	if r.Failed() {
		c.RunFailures.WithLabelValues(backend).Inc()
		return
	}
	c.RunDuration.WithLabelValues(backend, workers).Observe(r.Seconds)
	if v, ok := speedup.Value(); ok {
		c.Speedup.WithLabelValues(backend, workers).Set(v)
	}
}
