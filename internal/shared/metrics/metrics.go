package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-arrays/internal/shared/logger"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// Demo metrics
	demoRunsTotal   *prometheus.CounterVec
	demoRunDuration *prometheus.HistogramVec
	demoOutputBytes *prometheus.CounterVec

	logger *logger.Logger
}

// New creates a new metrics instance backed by its own registry
func New(logger *logger.Logger) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		logger:   logger.Named("metrics"),
	}

	m.initDemoMetrics()

	m.logger.Debug("Metrics initialized")

	return m
}

// initDemoMetrics initializes demo-related metrics
func (m *Metrics) initDemoMetrics() {
	factory := promauto.With(m.registry)

	m.demoRunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_runs_total",
			Help: "Total number of demo runs",
		},
		[]string{"demo", "status"},
	)

	m.demoRunDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "demo_run_duration_seconds",
			Help:    "Demo run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"demo"},
	)

	m.demoOutputBytes = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "demo_output_bytes_total",
			Help: "Total number of bytes written by demos",
		},
		[]string{"demo"},
	)
}

// RecordDemoRun records a finished demo run
func (m *Metrics) RecordDemoRun(demo string, duration time.Duration, outputBytes int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	m.demoRunsTotal.WithLabelValues(demo, status).Inc()
	m.demoRunDuration.WithLabelValues(demo).Observe(duration.Seconds())
	m.demoOutputBytes.WithLabelValues(demo).Add(float64(outputBytes))
}

// Registry exposes the underlying registry for gathering
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics to filename in the text exposition format
func (m *Metrics) WriteTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}

	m.logger.Debug("Metrics written")
	return nil
}
