package middleware

import (
	"eventscheduler/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDMiddleware tags each request with an id (kept from X-Request-ID when
// the caller sends one) and stores a logger carrying that id in the context.
func RequestIDMiddleware(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(utils.RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(utils.RequestIDHeader, id)
		c.Set(utils.LoggerContextKey, base.With(
			zap.String("requestID", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		))
		c.Next()
	}
}
