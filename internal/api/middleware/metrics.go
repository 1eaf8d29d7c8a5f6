package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"voicebridge/internal/app/metrics"
)

// Metrics records request counts and latencies per route. The route template
// (not the raw path) is used as the label to keep cardinality bounded.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.RequestsTotal.WithLabelValues(
			c.Request.Method, route, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.RequestDuration.WithLabelValues(
			c.Request.Method, route,
		).Observe(time.Since(start).Seconds())
	}
}
