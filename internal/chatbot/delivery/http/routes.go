package http

import (
	"github.com/gin-gonic/gin"

	"portfolio-chatbot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the chat route is rate limited; status and clear-history are cheap.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.GET("/status", h.Status)
	rg.POST("/clear-history", h.ClearHistory)
}
