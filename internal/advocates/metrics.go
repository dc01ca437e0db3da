package advocates

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for advocate store reads.
type Metrics struct {
	// Store read latency by op ("count", "page") and outcome ("ok", "error").
	QueryDuration *prometheus.HistogramVec
}

// NewMetrics creates the advocate collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		QueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "advocates_query_duration_seconds",
			Help:    "Duration of advocate store reads by operation and outcome",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"op", "outcome"}),
	}
}

// ObserveQuery records the duration of a store read.
func (m *Metrics) ObserveQuery(op string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.QueryDuration.WithLabelValues(op, outcome).Observe(d.Seconds())
}
