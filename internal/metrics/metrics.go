package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream labels.
const (
	UpstreamGeocode    = "geocode"
	UpstreamSearch     = "nearby_search"
	UpstreamDetails    = "place_details"
	UpstreamDirections = "directions"
	UpstreamStatus     = "status_page"
)

type Metrics struct {
	Requests        *prometheus.CounterVec
	UpstreamErrors  *prometheus.CounterVec
	UpstreamSeconds *prometheus.HistogramVec
	ExitFallbacks   prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "mtr_http_requests_total",
			Help: "Total number of handled HTTP requests.",
		}, []string{"route", "code"}),
		UpstreamErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "mtr_upstream_errors_total",
			Help: "Total number of failed calls to upstream services.",
		}, []string{"upstream"}),
		UpstreamSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mtr_upstream_request_duration_seconds",
			Help:    "Duration of calls to upstream services.",
			Buckets: prometheus.DefBuckets,
		}, []string{"upstream"}),
		ExitFallbacks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "mtr_exit_fallbacks_total",
			Help: "Number of lookups where no exit was found and the default label was used.",
		}),
	}
}
