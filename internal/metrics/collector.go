// Package metrics provides the service's Prometheus instrumentation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector bundles the transform service metrics. The namespace is a
// parameter so tests can register independent collectors without
// colliding in the default registry.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestSize     prometheus.Histogram
	responseSize    prometheus.Histogram
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
}

// NewCollector registers and returns a collector under namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		requestSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_size_bytes",
				Help:      "HTTP request body size in bytes",
				Buckets:   prometheus.ExponentialBuckets(64, 8, 8),
			},
		),
		responseSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_size_bytes",
				Help:      "HTTP response body size in bytes",
				Buckets:   prometheus.ExponentialBuckets(64, 8, 8),
			},
		),
		cacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transform_cache_hits_total",
				Help:      "Transform results served from the LRU cache",
			},
		),
		cacheMisses: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transform_cache_misses_total",
				Help:      "Transform requests not found in the LRU cache",
			},
		),
	}
}

// ObserveRequest records one completed HTTP request.
func (c *Collector) ObserveRequest(method, path, status string, duration time.Duration, requestBytes, responseBytes int) {
	c.requestsTotal.WithLabelValues(method, path, status).Inc()
	c.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	c.requestSize.Observe(float64(requestBytes))
	c.responseSize.Observe(float64(responseBytes))
}

// CacheHit records a transform served from cache.
func (c *Collector) CacheHit() { c.cacheHits.Inc() }

// CacheMiss records a transform that had to be computed.
func (c *Collector) CacheMiss() { c.cacheMisses.Inc() }
