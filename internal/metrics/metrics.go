// Package metrics exposes prometheus collectors for generation and usage
// recording.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "compgen"

// Outcome labels for generation requests
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics owns a private registry so tests and multiple servers never collide
type Metrics struct {
	registry *prometheus.Registry

	generations   *prometheus.CounterVec
	artifacts     *prometheus.CounterVec
	duration      prometheus.Histogram
	usageEvents   *prometheus.CounterVec
	droppedEvents prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generation requests by outcome.",
		}, []string{"outcome"}),
		artifacts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "artifacts_total",
			Help:      "Artifacts produced by kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time spent validating and synthesizing one configuration.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}),
		usageEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "usage_events_total",
			Help:      "Usage events persisted by action.",
		}, []string{"action"}),
		droppedEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "usage_events_dropped_total",
			Help:      "Usage events dropped because the recorder queue was full.",
		}),
	}

	m.registry.MustRegister(
		m.generations,
		m.artifacts,
		m.duration,
		m.usageEvents,
		m.droppedEvents,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveGeneration records one generation request
func (m *Metrics) ObserveGeneration(outcome string, elapsed time.Duration, kinds []string) {
	m.generations.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
	for _, kind := range kinds {
		m.artifacts.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) UsageRecorded(action string) {
	m.usageEvents.WithLabelValues(action).Inc()
}

func (m *Metrics) UsageDropped() {
	m.droppedEvents.Inc()
}

// Registry is exposed for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
