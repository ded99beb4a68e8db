package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/syntaxscout-api/internal/service"
)

const unmatchedRoute = "unmatched"

// Metrics records latency and status per route template. Scrapes of the
// metrics endpoint itself are not counted.
func Metrics(metrics *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		switch {
		case route == "":
			route = unmatchedRoute
		case strings.HasSuffix(route, "/metrics"):
			return
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
