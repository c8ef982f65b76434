package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coverage_requests_total",
		Help: "Total HTTP requests by route",
	}, []string{"route"})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "coverage_request_duration_ms",
		Help:    "Request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
	MatchedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coverage_matched_total",
		Help: "Total positive coverage decisions by match strategy",
	}, []string{"via"})
	NoMatchTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "coverage_no_match_total",
		Help: "Total negative coverage decisions",
	})
	SnapshotHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "coverage_snapshot_cache_hits_total",
		Help: "Total zone snapshot cache hits",
	})
	SnapshotMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "coverage_snapshot_cache_misses_total",
		Help: "Total zone snapshot cache misses",
	})
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDurationMs)
	prometheus.MustRegister(MatchedTotal)
	prometheus.MustRegister(NoMatchTotal)
	prometheus.MustRegister(SnapshotHitsTotal)
	prometheus.MustRegister(SnapshotMissesTotal)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }
