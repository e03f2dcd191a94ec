package api

import (
	"time"

	"wikiquiz/internal/api/handlers"
	"wikiquiz/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request id on responses
const RequestIDHeader = "X-Request-ID"

// RequestID tags each request with a uuid, reusing a valid one sent by a proxy
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger attaches a request-scoped logger and logs one line per request
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLog := log.With("request_id", c.GetString(RequestIDHeader))
		c.Set(handlers.LoggerContextKey, reqLog)

		c.Next()

		status := c.Writer.Status()
		kv := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start),
		}
		switch {
		case status >= 500:
			reqLog.Error("request failed", kv...)
		case status >= 400:
			reqLog.Warn("request rejected", kv...)
		default:
			reqLog.Debug("request", kv...)
		}
	}
}
