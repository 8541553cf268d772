package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collectors are usable before Register; registration only exposes them.
var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ytkw_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by endpoint, method and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ytkw_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	ChannelAnalyses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytkw_channel_analyses_total",
			Help: "Channel analyses performed, by outcome.",
		},
		[]string{"outcome"},
	)

	VideosScanned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ytkw_videos_scanned_total",
			Help: "Videos scored for keyword mentions.",
		},
	)
)

// Register adds all collectors to reg. Call once at startup.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{RequestDuration, RequestsInFlight, ChannelAnalyses, VideosScanned} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
