package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics holds request collectors registered against a single registry.
type HTTPMetrics struct {
	Duration *prometheus.HistogramVec
}

// NewHTTPMetrics creates and registers the request duration histogram on reg.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	return &HTTPMetrics{
		Duration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "advocates_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method and status code",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "code"}),
	}
}

// Metrics returns middleware that observes each request's duration.
// A nil HTTPMetrics disables observation.
func Metrics(m *HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := record(w)
			next.ServeHTTP(rec, r)
			m.Duration.
				WithLabelValues(r.Method, strconv.Itoa(rec.status)).
				Observe(time.Since(start).Seconds())
		})
	}
}
