// Package main is the entry point for the assistant API server.
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
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/akaki911/aispace-sub003/internal/config"
	"github.com/akaki911/aispace-sub003/internal/corpus"
	"github.com/akaki911/aispace-sub003/internal/handler"
	"github.com/akaki911/aispace-sub003/internal/intent"
	"github.com/akaki911/aispace-sub003/internal/locale"
	"github.com/akaki911/aispace-sub003/internal/memory"
	"github.com/akaki911/aispace-sub003/internal/middleware"
	"github.com/akaki911/aispace-sub003/internal/orchestrator"
	"github.com/akaki911/aispace-sub003/internal/pending"
	"github.com/akaki911/aispace-sub003/internal/provider"
	"github.com/akaki911/aispace-sub003/internal/responder"
	"github.com/akaki911/aispace-sub003/internal/stream"
	"github.com/akaki911/aispace-sub003/pkg/logger"
	"github.com/akaki911/aispace-sub003/pkg/tracing"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting assistant API server")

	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "assistant-router", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Memory store: NATS KV when configured, in-process otherwise.
	var store memory.Store
	var checker handler.HealthChecker
	if cfg.NATSURL != "" {
		natsStore, err := memory.NewNATSStore(memory.NATSConfig{
			URL:    cfg.NATSURL,
			Token:  cfg.NATSToken,
			Bucket: cfg.NATSBucket,
		})
		if err != nil {
			log.Error("failed to connect memory store", zap.Error(err))
			os.Exit(1)
		}
		defer natsStore.Close()
		store = natsStore
		checker = natsStore
	} else {
		store = memory.NewMemStore()
	}

	// Completion provider is optional: absence means offline mode.
	var client provider.Client
	switch {
	case cfg.DefaultProvider == "anthropic" && cfg.AnthropicAPIKey != "":
		client, err = provider.New("anthropic", cfg.AnthropicAPIKey)
	case cfg.OpenAIAPIKey != "":
		client, err = provider.New("openai", cfg.OpenAIAPIKey)
	case cfg.AnthropicAPIKey != "":
		client, err = provider.New("anthropic", cfg.AnthropicAPIKey)
	}
	if err != nil {
		log.Warn("completion provider unavailable, running offline", zap.Error(err))
		client = nil
	}
	if client == nil {
		log.Info("no completion provider configured, streaming runs offline")
	}

	loc, err := locale.New(cfg.DefaultLanguage, cfg.LocaleBundle)
	if err != nil {
		log.Error("failed to load locale bundle", zap.Error(err))
		os.Exit(1)
	}

	gate := intent.NewGreetingGate(store)
	classifier := intent.NewClassifier(gate)
	tracker := pending.NewTracker(store, cfg.PendingTTL)
	searcher := corpus.NewSearcher(cfg.CorpusRoot)
	builder := responder.NewBuilder(loc)
	orch := orchestrator.New(classifier, tracker, searcher, builder, log)

	streamCfg := stream.Config{
		Heartbeat:    cfg.HeartbeatInterval,
		SegmentDelay: cfg.SegmentDelay,
		ChunkDelay:   cfg.ChunkDelay,
		ChunkSize:    cfg.ChunkSize,
	}

	healthHandler := handler.NewHealthHandler(checker)
	chatHandler := handler.NewChatHandler(orch, cfg.DefaultLanguage, log)
	streamHandler := handler.NewStreamHandler(orch, client, streamCfg, cfg.DefaultModel, cfg.DefaultLanguage, log)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Personal-ID"},
		ExposedHeaders:   []string{"X-Correlation-ID", "X-Response-Format", "X-Delivery-Mode"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Public assistant surface.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))
		r.Post("/chat", chatHandler.Chat)
		r.Post("/chat/stream", streamHandler.Stream)
	})

	// Operator surface: authenticated, always admin audience.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))
		r.Post("/chat", chatHandler.ChatAdmin)
		r.Post("/chat/stream", streamHandler.Stream)
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
