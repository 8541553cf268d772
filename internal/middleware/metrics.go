package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yt-insights/mentions/internal/metrics"
)

// Metrics records request duration and in-flight count for Prometheus.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Don't instrument the /metrics endpoint itself
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		metrics.RequestsInFlight.Inc()
		defer metrics.RequestsInFlight.Dec()
		start := time.Now()

		c.Next()

		// FullPath is the route template; unmatched paths share one label.
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RequestDuration.
			WithLabelValues(endpoint, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
