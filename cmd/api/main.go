package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"portfolio-chatbot/config"
	_ "portfolio-chatbot/docs" // Swagger docs
	"portfolio-chatbot/internal/chatbot"
	chatbotHTTP "portfolio-chatbot/internal/chatbot/delivery/http"
	"portfolio-chatbot/internal/chatbot/store"
	"portfolio-chatbot/internal/chatbot/usecase"
	"portfolio-chatbot/internal/httpserver"
	"portfolio-chatbot/internal/middleware"
	"portfolio-chatbot/pkg/groq"
	"portfolio-chatbot/pkg/log"
)

// @title       Portfolio Chatbot API
// @description Personal-portfolio site with an LLM-backed chat widget.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// Load .env if present; real env vars win either way.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Portfolio Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model client. Optional: without a key the chat endpoint reports
	// a configuration error and status shows apiConfigured=false.
	var llm groq.IGroq
	if cfg.Groq.APIKey != "" {
		client, gErr := groq.New(groq.Config{
			APIKey:      cfg.Groq.APIKey,
			Model:       cfg.Groq.Model,
			BaseURL:     cfg.Groq.BaseURL,
			Temperature: cfg.Groq.Temperature,
		})
		if gErr != nil {
			logger.Error(ctx, "Failed to create Groq client: ", gErr)
			return
		}
		llm = client
		logger.Infof(ctx, "Groq client initialized (model=%s)", cfg.Groq.Model)
	} else {
		logger.Warn(ctx, "GROQ_API_KEY not set, chat will return a configuration error")
	}

	// 4. Chatbot domain
	sessionStore, err := store.New(chatbot.DefaultPortfolio().SystemPrompt(), cfg.Chatbot.SessionCapacity)
	if err != nil {
		logger.Error(ctx, "Failed to create session store: ", err)
		return
	}

	uc := usecase.New(logger, sessionStore, llm)
	handler := chatbotHTTP.New(logger, uc)
	mw := middleware.New(logger, cfg.Chatbot.RateLimitPerMin)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		StaticDir:      cfg.Static.Dir,
		ChatbotHandler: handler,
		Middleware:     mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
