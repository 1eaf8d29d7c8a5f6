package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// StructuredLogging emits one slog line per request. Request and response
// body sizes are logged because the interesting traffic here is audio:
// multi-megabyte uploads in, synthesized clips out. Probe endpoints are
// skipped to keep scrape noise out of the logs.
func StructuredLogging(logger *slog.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		if param.Path == "/health" || param.Path == "/metrics" {
			return ""
		}

		requestID := ""
		if param.Keys != nil {
			if id, exists := param.Keys[requestIDKey]; exists {
				requestID = id.(string)
			}
		}

		logger.Info("request completed",
			"request_id", requestID,
			"method", param.Method,
			"path", param.Path,
			"status", param.StatusCode,
			"latency_ms", param.Latency.Milliseconds(),
			"request_bytes", param.Request.ContentLength,
			"response_bytes", param.BodySize,
			"client_ip", param.ClientIP,
			"error", param.ErrorMessage,
		)

		return ""
	})
}
