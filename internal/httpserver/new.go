package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatbotHTTP "portfolio-chatbot/internal/chatbot/delivery/http"
	"portfolio-chatbot/internal/middleware"
	"portfolio-chatbot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Static site (widget host page + assets)
	staticDir string

	// Chatbot domain
	chatbotHandler chatbotHTTP.Handler
	mw             middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	StaticDir   string

	ChatbotHandler chatbotHTTP.Handler
	Middleware     middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		staticDir:      cfg.StaticDir,
		chatbotHandler: cfg.ChatbotHandler,
		mw:             cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatbotHandler == nil {
		return errors.New("chatbot handler is required")
	}
	return nil
}
