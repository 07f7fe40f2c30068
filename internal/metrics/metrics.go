// Package metrics provides Prometheus instrumentation for cinefinder.
//
// Metrics are registered with the default registry at init time and exposed
// by Handler at GET /metrics:
//
//	cinefinder_catalog_fetch_total          counter: TMDB fetches by endpoint/result
//	cinefinder_http_requests_total          counter: requests by method/path/status
//	cinefinder_http_request_duration_seconds histogram: latency by method/path
//	cinefinder_favorites_total              gauge: persisted favorites
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch results.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// CatalogFetches counts remote catalog requests by endpoint and result.
var CatalogFetches = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "cinefinder_catalog_fetch_total",
	Help: "Remote catalog requests by endpoint and result.",
}, []string{"endpoint", "result"})

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "cinefinder_http_requests_total",
	Help: "Total HTTP requests handled.",
}, []string{"method", "path", "status"})

var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "cinefinder_http_request_duration_seconds",
	Help:    "HTTP request latency in seconds.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "path"})

// Favorites is the number of entries in the persisted favorites list.
var Favorites = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "cinefinder_favorites_total",
	Help: "Number of persisted favorite movies.",
})

// RecordFetch increments CatalogFetches for one request outcome.
func RecordFetch(endpoint string, err error) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	CatalogFetches.WithLabelValues(endpoint, result).Inc()
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
