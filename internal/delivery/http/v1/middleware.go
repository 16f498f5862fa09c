package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDCtxKey = "request_id"
)

// HandleRequestLogger tags the request with an id, stores a child logger in
// the request context for the services and logs the outcome.
func (h *handlerImpl) HandleRequestLogger(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Set(requestIDCtxKey, requestID)
	c.Header(requestIDHeader, requestID)

	logger := h.logger.With().
		Str("request_id", requestID).
		Logger()
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))

	start := time.Now()
	c.Next()

	event := logger.Info()
	if status := c.Writer.Status(); status >= 500 {
		event = logger.Error()
	} else if status >= 400 {
		event = logger.Warn()
	}
	event.
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Int("status", c.Writer.Status()).
		Dur("latency", time.Since(start)).
		Msg("handled request")
}

// requestLogger returns the logger HandleRequestLogger stored in the
// request context, falling back to the handler logger.
func (h *handlerImpl) requestLogger(c *gin.Context) *zerolog.Logger {
	if l := zerolog.Ctx(c.Request.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &h.logger
}
