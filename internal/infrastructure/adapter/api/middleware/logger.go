package middleware

import (
	"time"

	coreport "github.com/camilosanchez/virtual-wallet/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger middleware logs each request with its outcome. Health probes are
// logged at debug level so they do not drown the operation logs.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		statusCode := c.Writer.Status()
		fields := map[string]any{
			"method":     method,
			"path":       path,
			"query":      c.Request.URL.RawQuery,
			"status":     statusCode,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case path == "/health":
			logger.Debug("Request processed", fields)
		case statusCode >= 500:
			logger.Error("Request failed", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
