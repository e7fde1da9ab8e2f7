package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	rendersTotal     *prometheus.CounterVec
	renderDuration   *prometheus.HistogramVec
	activationsTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		rendersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "component_renders_total",
				Help: "Total number of component render passes",
			},
			[]string{"component"},
		),
		renderDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "component_render_duration_milliseconds",
				Help:    "Component render duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
			},
			[]string{"component"},
		),
		activationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "component_activations_total",
				Help: "Total number of component activation events",
			},
			[]string{"component", "event"},
		),
	}
}

// RecordRender records one render pass of a component
func (m *PrometheusMetrics) RecordRender(component string, duration time.Duration) {
	m.rendersTotal.WithLabelValues(component).Inc()
	m.renderDuration.WithLabelValues(component).Observe(float64(duration.Microseconds()) / 1000.0)
}

// RecordActivation records one user activation event on a component
func (m *PrometheusMetrics) RecordActivation(component string, event string) {
	m.activationsTotal.WithLabelValues(component, event).Inc()
}

// NoopMetrics discards all recordings. Used in tests.
type NoopMetrics struct{}

func (NoopMetrics) RecordRender(component string, duration time.Duration) {}

func (NoopMetrics) RecordActivation(component string, event string) {}
