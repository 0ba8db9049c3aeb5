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

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/chronos-agency/timetravel-api/internal/catalog"
	"github.com/chronos-agency/timetravel-api/internal/config"
	"github.com/chronos-agency/timetravel-api/internal/events"
	"github.com/chronos-agency/timetravel-api/internal/handler"
	"github.com/chronos-agency/timetravel-api/internal/llm"
	"github.com/chronos-agency/timetravel-api/internal/quiz"
	"github.com/chronos-agency/timetravel-api/internal/relay"
	"github.com/chronos-agency/timetravel-api/internal/session"
	"github.com/chronos-agency/timetravel-api/pkg/logger"
	"github.com/chronos-agency/timetravel-api/pkg/tracing"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
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
		tp, err := tracing.InitTracer(ctx, "timetravel-api", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Connect the optional event bus
	var publisher *events.Publisher
	if cfg.NATSURL != "" {
		publisher, err = events.Connect(cfg.NATSURL, cfg.NATSToken, log)
		if err != nil {
			log.Warn("failed to connect to NATS, events disabled", zap.Error(err))
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Static content: catalog and scoring configuration, validated at boot
	cat := catalog.Default()
	engine, err := quiz.NewEngine(cat)
	if err != nil {
		log.Error("invalid recommendation configuration", zap.Error(err))
		os.Exit(1)
	}

	// Completion provider client; nil means the relay reports NotConfigured
	var llmClient llm.Client
	switch llm.Provider(cfg.Provider) {
	case llm.ProviderAnthropic:
		if cfg.AnthropicAPIKey != "" {
			llmClient, err = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
		}
	default:
		if cfg.OpenAIAPIKey != "" {
			llmClient, err = llm.NewOpenAIClient(cfg.OpenAIAPIKey)
		}
	}
	if err != nil {
		log.Warn("failed to create completion client, chat disabled", zap.Error(err))
		llmClient = nil
	}
	if llmClient == nil {
		log.Warn("no provider API key configured, chat requests will fail as unavailable")
	}

	// Core services
	policy := relay.Policy{
		Timeout:     cfg.RelayTimeout,
		MaxAttempts: cfg.RelayMaxAttempts,
		Backoff:     cfg.RelayBackoff,
	}
	completion := relay.Completion{
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxReplyTokens,
		Temperature: cfg.Temperature,
	}
	relaySvc := relay.New(llmClient, cat, policy, completion, log, publisher)
	sessionMgr := session.NewManager(relaySvc, log)

	// Router
	router := handler.NewRouter(handler.RouterConfig{
		Logger:            log,
		Relay:             relaySvc,
		Sessions:          sessionMgr,
		Quiz:              engine,
		Catalog:           cat,
		Events:            publisher,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
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
