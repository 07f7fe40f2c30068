package middleware

import (
	"strconv"
	"time"

	"github.com/amaumene/cinefinder/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template, so movie
// ids never become label values.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		metrics.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
