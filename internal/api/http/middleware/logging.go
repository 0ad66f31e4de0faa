package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/techhive/userdir/internal/logger"
)

// RequestLogger logs every request once on entry and once more with the
// final status on exit, tagged with a per-request id that is also returned
// to the client.
type RequestLogger struct {
	logger *logger.Logger
}

// NewRequestLogger creates a new RequestLogger middleware.
func NewRequestLogger(logger *logger.Logger) *RequestLogger {
	return &RequestLogger{logger: logger}
}

// Handle logs method and path on entry, and method, path, status and
// duration on exit, independent of outcome.
func (l *RequestLogger) Handle(c *gin.Context) {
	start := time.Now()
	requestID := uuid.NewString()
	c.Writer.Header().Set("X-Request-Id", requestID)

	l.logger.Info("incoming request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", requestID)

	c.Next()

	l.logger.Info("outgoing response",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", requestID)

	for _, ginErr := range c.Errors {
		l.logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", requestID,
			"error", ginErr.Err.Error())
	}
}
