package middleware

import (
	"strconv"
	"time"

	"github.com/shri8977/FUTURE-FS-01/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency per route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched" // keeps label cardinality bounded on 404s
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
