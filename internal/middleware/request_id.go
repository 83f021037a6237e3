package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "portfolio-chatbot/pkg/log"
)

// RequestIDHeader is echoed back to the client for support correlation.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the client's when given.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		ctx := pkgLog.ContextWithRequestID(c.Request.Context(), reqID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, reqID)

		c.Next()
	}
}
