package httpserver

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatbotHTTP "portfolio-chatbot/internal/chatbot/delivery/http"
	"portfolio-chatbot/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	srv.registerStaticRoutes()

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api")
	chatbotHTTP.RegisterRoutes(api.Group("/chatbot"), srv.chatbotHandler, srv.mw)
	srv.l.Infof(ctx, "Chatbot routes registered at /api/chatbot")
}

// registerStaticRoutes serves the portfolio site. Unmatched routes fall
// back to index.html so client-side paths survive a refresh.
func (srv *HTTPServer) registerStaticRoutes() {
	if srv.staticDir == "" {
		return
	}

	indexPath := filepath.Join(srv.staticDir, "index.html")

	srv.gin.Static("/js", filepath.Join(srv.staticDir, "js"))
	srv.gin.StaticFile("/", indexPath)

	srv.gin.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}
		c.File(indexPath)
	})

	srv.l.Infof(context.Background(), "Serving static files from %s", srv.staticDir)
}
