// RescueLink - Emergency Assistance Coordination Server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/rescuelink/rescuelink/internal/api"
	"github.com/rescuelink/rescuelink/internal/chat"
	"github.com/rescuelink/rescuelink/internal/config"
	"github.com/rescuelink/rescuelink/internal/events"
	"github.com/rescuelink/rescuelink/internal/identity"
	"github.com/rescuelink/rescuelink/internal/lifecycle"
	"github.com/rescuelink/rescuelink/internal/live"
	"github.com/rescuelink/rescuelink/internal/middleware"
	"github.com/rescuelink/rescuelink/internal/store"
	"github.com/rescuelink/rescuelink/internal/triage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	// Initialize triage gRPC client (optional).
	var classifier triage.Classifier
	var triageChecker api.TriageChecker
	if cfg.TriageAddr != "" {
		slog.Info("Connecting to triage service", "address", cfg.TriageAddr)

		grpcClient, err := triage.NewGrpcClient(triage.GrpcClientConfig{
			Address:        cfg.TriageAddr,
			ConnectTimeout: cfg.Triage.ConnectTimeout,
			RequestTimeout: cfg.Triage.RequestTimeout,
		}, logger)
		if err != nil {
			slog.Warn("Failed to connect to triage service, classification disabled", "error", err)
		} else {
			defer grpcClient.Close()
			classifier = grpcClient
			triageChecker = grpcClient
		}
	}
	if classifier == nil {
		slog.Info("Triage disabled (TRIAGE_ADDR not set or connection failed)")
	}

	// Initialize services.
	hub := live.NewHub()
	router := events.NewRouter(hub)
	lifecycleSvc := lifecycle.NewService(repo, router, classifier)
	lifecycleSvc.SetRetryPolicy(cfg.Retry.DatabaseMaxRetries, cfg.Retry.DatabaseRetryBaseDelay)
	chatSvc := chat.NewService(repo, router)

	// Initialize handlers.
	baseHandler := api.NewHandler(repo, cfg.FrontendURL)
	healthHandler := api.NewHealthHandler(repo, triageChecker)
	liveHandler := live.NewHandler(repo, hub, cfg.FrontendURL, cfg.IsDevelopment())

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(identity.Middleware(repo))

	// Public routes.
	healthHandler.RegisterHealth(r)

	// API routes.
	api.NewUserHandler(baseHandler).RegisterRoutes(r)
	api.NewRequestHandler(baseHandler, lifecycleSvc).RegisterRoutes(r)
	api.NewResponderHandler(baseHandler).RegisterRoutes(r)
	api.NewChatHandler(baseHandler, chatSvc).RegisterRoutes(r)

	// WebSocket endpoint.
	r.Get("/ws", liveHandler.ServeHTTP)

	// Create server.
	// Note: WebSocket connections require long timeouts (no WriteTimeout).
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
