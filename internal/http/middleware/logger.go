package middleware

import (
	"strconv"
	"time"

	"colectivo/internal/metrics"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Logger writes one access log line per request and, when a registry is
// given, observes the latency by route template.
func Logger(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		log.WithFields(log.Fields{
			"module":     "HTTP",
			"request_id": GetRequestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": float64(latency.Microseconds()) / 1000.0,
			"ip":         c.ClientIP(),
		}).Info("request")

		if reg != nil {
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			reg.HTTPLatency.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Observe(latency.Seconds())
		}
	}
}
