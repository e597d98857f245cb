// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/korea-connect/app-platform/internal/assistant"
	"github.com/korea-connect/app-platform/internal/config"
	"github.com/korea-connect/app-platform/internal/directory"
	"github.com/korea-connect/app-platform/internal/handler"
	"github.com/korea-connect/app-platform/internal/i18n"
	"github.com/korea-connect/app-platform/internal/llm"
	"github.com/korea-connect/app-platform/internal/middleware"
	"github.com/korea-connect/app-platform/internal/platform"
	"github.com/korea-connect/app-platform/internal/view"
	"github.com/korea-connect/app-platform/pkg/logger"
	"github.com/korea-connect/app-platform/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "korea-connect", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Load content and link catalogs; incomplete translations abort boot.
	table := i18n.DefaultTable()
	if err := table.Validate(); err != nil {
		log.Error("invalid content table", zap.Error(err))
		os.Exit(1)
	}
	links := directory.Default()
	if err := links.Validate(); err != nil {
		log.Error("invalid link directory", zap.Error(err))
		os.Exit(1)
	}

	// Initialize LLM client. Without an API key the assistant still runs
	// and serves its fixed fallback answers.
	var llmClient llm.Client = llm.Unavailable{}
	switch {
	case cfg.AnthropicAPIKey != "":
		c, err := llm.NewAnthropicClient(cfg.AnthropicAPIKey)
		if err != nil {
			log.Warn("failed to create Anthropic client, assistant degraded", zap.Error(err))
		} else {
			llmClient = c
		}
	case cfg.OpenAIAPIKey != "":
		c, err := llm.NewOpenAIClient(cfg.OpenAIAPIKey)
		if err != nil {
			log.Warn("failed to create OpenAI client, assistant degraded", zap.Error(err))
		} else {
			llmClient = c
		}
	default:
		log.Warn("no LLM API key configured, assistant will serve fallback answers")
	}

	gateway := assistant.New(llmClient, cfg.LLMModel, log)

	// Platform capabilities. The server itself has no microphone or GPS;
	// absent capabilities degrade per the same rules the client shell uses.
	voice := platform.NewVoiceInput(nil, func(notice string) {
		log.Warn("voice input unavailable", zap.String("notice", notice))
	})

	// Renderers
	visaRenderer := view.NewVisaChatRenderer(gateway, table, log)
	registry := view.Registry{
		Dashboard:  view.NewDashboardRenderer(table),
		Wallet:     view.NewWalletRenderer(),
		Visa:       visaRenderer,
		Transport:  view.NewTransportRenderer(gateway, platform.NoLocator{}, table),
		Translator: view.NewTranslatorRenderer(gateway, voice, platform.SystemClipboard{}),
		Community:  view.NewLinkMenuRenderer(view.ViewCommunity, i18n.KeyServiceCommunity, directory.CategoryCommunity, table, links),
		Medical:    view.NewLinkMenuRenderer(view.ViewMedical, i18n.KeyServiceMedical, directory.CategoryMedical, table, links),
		Shopping:   view.NewLinkMenuRenderer(view.ViewShopping, i18n.KeyServiceShopping, directory.CategoryShopping, table, links),
		Admin:      view.NewLinkMenuRenderer(view.ViewAdmin, i18n.KeyServiceAdmin, directory.CategoryAdmin, table, links),
	}
	controller := view.NewController(registry, log)
	controller.SetLocale(cfg.DefaultLocale)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(llmClient)
	stateHandler := handler.NewStateHandler(controller, log)
	assistantHandler := handler.NewAssistantHandler(gateway, log)
	walletHandler := handler.NewWalletHandler()
	linksHandler := handler.NewLinksHandler(links)
	contentHandler := handler.NewContentHandler(table)
	visaHandler := handler.NewVisaHandler(visaRenderer, controller, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS())

	// Health endpoints
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		// Navigation state
		r.Get("/state", stateHandler.Get)
		r.Put("/state/view", stateHandler.SetView)
		r.Put("/state/locale", stateHandler.SetLocale)
		r.Get("/views/active", stateHandler.Active)

		// Assistant operations
		r.Route("/assistant", func(r chi.Router) {
			r.Post("/chat", assistantHandler.Chat)
			r.Post("/translate", assistantHandler.Translate)
			r.Post("/route", assistantHandler.Route)
			r.Post("/locate", assistantHandler.Locate)
		})

		// Currency conversion
		r.Post("/currency/convert", walletHandler.Convert)
		r.Get("/currency/rates", walletHandler.Rates)

		// Link directory and localized content
		r.Get("/links/{category}", linksHandler.List)
		r.Get("/content", contentHandler.List)
		r.Get("/content/{key}", contentHandler.Get)

		// Visa consultation conversation
		r.Route("/visa", func(r chi.Router) {
			r.Get("/messages", visaHandler.Messages)
			r.Post("/messages", visaHandler.Send)
			r.Post("/official-notice", visaHandler.OfficialNotice)
		})
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
