package infrastructure

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters of a single CLI run on a private registry
type Metrics struct {
	registry        *prometheus.Registry
	projections     prometheus.Counter
	projectionYears prometheus.Histogram
	exports         *prometheus.CounterVec
}

// NewMetrics creates and registers the run metrics
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		projections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rmdcalc_projections_total",
			Help: "Number of projections computed.",
		}),
		projectionYears: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rmdcalc_projection_years",
			Help:    "Number of years per projection.",
			Buckets: []float64{1, 5, 10, 20, 30, 50},
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rmdcalc_exports_total",
			Help: "Number of export attempts by format and result.",
		}, []string{"format", "result"}),
	}
	m.registry.MustRegister(m.projections, m.projectionYears, m.exports)
	return m
}

// RecordProjection counts one projection of the given length
func (m *Metrics) RecordProjection(years int) {
	m.projections.Inc()
	m.projectionYears.Observe(float64(years))
}

// RecordExport counts one export attempt; a non-nil err counts as failure
func (m *Metrics) RecordExport(format string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.exports.WithLabelValues(format, result).Inc()
}

// WriteTextfile atomically writes all metrics to path in the text
// exposition format read by the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}
