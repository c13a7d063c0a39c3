package middleware

import (
	"strconv"
	"time"

	"github.com/ErlanBelekov/task-tracker/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records latency and count per route template, so /tasks/:id is
// one series regardless of the id.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		labels := []string{c.Request.Method, path, strconv.Itoa(c.Writer.Status())}

		metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
	}
}
