// Package metrics exposes Prometheus collectors for the analysis pipeline.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "aiready"

// Metrics holds the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	analyses        *prometheus.CounterVec
	analysisSeconds prometheus.Histogram
	fetchSeconds    prometheus.Histogram
	checkFailures   *prometheus.CounterVec
	checkPanics     *prometheus.CounterVec
	narrativeCalls  *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
	scores          prometheus.Histogram
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Analyses by outcome (ok or an error kind).",
		}, []string{"outcome"}),
		analysisSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "End-to-end analysis duration.",
			Buckets:   prometheus.DefBuckets,
		}),
		fetchSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Page download duration.",
			Buckets:   []float64{0.25, 0.5, 1, 1.5, 3, 5, 10, 25},
		}),
		checkFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "check_failures_total",
			Help:      "Failed checks by check id.",
		}, []string{"check"}),
		checkPanics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "check_panics_total",
			Help:      "Checks that panicked and were converted to failures.",
		}, []string{"check"}),
		narrativeCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "narrative_calls_total",
			Help:      "Narrative analysis calls by outcome.",
		}, []string{"outcome"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups by outcome.",
		}, []string{"outcome"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "overall_score",
			Help:      "Distribution of overall readiness scores.",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.analyses,
		m.analysisSeconds,
		m.fetchSeconds,
		m.checkFailures,
		m.checkPanics,
		m.narrativeCalls,
		m.cacheLookups,
		m.scores,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveAnalysis(outcome string, d time.Duration) {
	m.analyses.WithLabelValues(outcome).Inc()
	m.analysisSeconds.Observe(d.Seconds())
}

func (m *Metrics) ObserveFetch(d time.Duration) {
	m.fetchSeconds.Observe(d.Seconds())
}

func (m *Metrics) ObserveScore(score int) {
	m.scores.Observe(float64(score))
}

func (m *Metrics) CheckFailed(id string) {
	m.checkFailures.WithLabelValues(id).Inc()
}

func (m *Metrics) CheckPanicked(id string) {
	m.checkPanics.WithLabelValues(id).Inc()
}

func (m *Metrics) NarrativeCall(outcome string) {
	m.narrativeCalls.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CacheLookup(hit bool) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.cacheLookups.WithLabelValues(outcome).Inc()
}
