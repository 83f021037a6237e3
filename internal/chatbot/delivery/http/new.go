package http

import (
	"github.com/gin-gonic/gin"

	"portfolio-chatbot/internal/chatbot"
	pkgLog "portfolio-chatbot/pkg/log"
)

// Handler is the public interface for the chatbot HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Status(c *gin.Context)
	ClearHistory(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chatbot.UseCase
}

// New creates a new HTTP handler for the chatbot domain.
func New(l pkgLog.Logger, uc chatbot.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
