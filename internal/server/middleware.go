package server

import (
	"net/http"
	"time"

	"github.com/velocart/delivery-coverage/internal/metrics"
)

// RequestMeter is a middleware that counts requests and measures
// their duration per route.
type RequestMeter struct{}

func (m *RequestMeter) Measure(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next(w, r)

		metrics.RequestsTotal.WithLabelValues(route).Inc()
		metrics.RequestDurationMs.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	}
}
