package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/turtacn/ClaimScout/internal/infrastructure/monitoring/prometheus"
)

// Metrics returns middleware that records request counts and latencies into
// the application metrics. The route label uses the chi route pattern rather
// than the raw path to keep cardinality bounded.
func Metrics(metrics *prometheus.AppMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if metrics == nil {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			wrapped := newWrappedResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			pattern := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					pattern = p
				}
			}

			metrics.HTTPRequestsTotal.WithLabelValues(
				r.Method, pattern, strconv.Itoa(wrapped.statusCode)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(
				r.Method, pattern).Observe(time.Since(start).Seconds())
		})
	}
}
