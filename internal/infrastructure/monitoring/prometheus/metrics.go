// Package prometheus wires the service's operational metrics to a dedicated
// prometheus registry exposed on /metrics.
package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Default histogram buckets per layer.
var (
	defaultHTTPDurationBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	defaultLLMDurationBuckets  = []float64{.5, 1, 2, 5, 10, 30, 60, 120}
	defaultResultCountBuckets  = []float64{0, 1, 2, 5, 10}
)

// AppMetrics holds all application metrics. One instance is created at
// startup and injected into the layers that record observations.
type AppMetrics struct {
	registry *prometheus.Registry

	// HTTP layer
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Similarity layer
	SearchDuration    prometheus.Histogram
	SearchResultCount prometheus.Histogram

	// Analysis layer
	AnalysisCacheHitsTotal   prometheus.Counter
	AnalysisCacheMissesTotal prometheus.Counter

	// External generator layer
	LLMRequestsTotal   *prometheus.CounterVec
	LLMRequestDuration prometheus.Histogram
}

// NewAppMetrics registers all metrics on a fresh registry under the given
// namespace. Process and Go runtime collectors are included so the /metrics
// endpoint is useful without extra wiring.
func NewAppMetrics(namespace string) *AppMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	registry.MustRegister(prometheus.NewGoCollector())

	m := &AppMetrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   defaultHTTPDurationBuckets,
		}, []string{"method", "route"}),
		SearchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "similarity_search_duration_seconds",
			Help:      "Latency of one similarity ranking over the full corpus.",
			Buckets:   defaultHTTPDurationBuckets,
		}),
		SearchResultCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "similarity_search_results",
			Help:      "Number of matches returned per similarity search.",
			Buckets:   defaultResultCountBuckets,
		}),
		AnalysisCacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_cache_hits_total",
			Help:      "Claim analyses served from the cache.",
		}),
		AnalysisCacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_cache_misses_total",
			Help:      "Claim analyses that required a generator call.",
		}),
		LLMRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_requests_total",
			Help:      "External generator calls by outcome.",
		}, []string{"outcome"}),
		LLMRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "llm_request_duration_seconds",
			Help:      "External generator call latency.",
			Buckets:   defaultLLMDurationBuckets,
		}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SearchDuration,
		m.SearchResultCount,
		m.AnalysisCacheHitsTotal,
		m.AnalysisCacheMissesTotal,
		m.LLMRequestsTotal,
		m.LLMRequestDuration,
	)
	return m
}

// Handler returns the HTTP handler serving this registry.
func (m *AppMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
