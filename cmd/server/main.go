// Portfolio API - chat assistant, contact form and visit counter backend.
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

	"github.com/rishabh-cloud/portfolio-api/internal/api"
	"github.com/rishabh-cloud/portfolio-api/internal/assistant"
	"github.com/rishabh-cloud/portfolio-api/internal/config"
	"github.com/rishabh-cloud/portfolio-api/internal/llm"
	"github.com/rishabh-cloud/portfolio-api/internal/mail"
	"github.com/rishabh-cloud/portfolio-api/internal/middleware"
	"github.com/rishabh-cloud/portfolio-api/internal/store"
	"github.com/rishabh-cloud/portfolio-api/internal/task"
	"github.com/rishabh-cloud/portfolio-api/web"
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

	slog.Info("Starting server", "port", cfg.Port, "provider", cfg.LLM.Provider)

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
	slog.Info("Database connected", "path", cfg.DBPath)

	generator, err := llm.New(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize model client", "error", err)
		os.Exit(1)
	}

	persona := assistant.DefaultPersona()
	if cfg.PersonaPath != "" {
		persona, err = assistant.LoadPersona(cfg.PersonaPath)
		if err != nil {
			slog.Error("Failed to load persona overrides", "path", cfg.PersonaPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Persona overrides loaded", "path", cfg.PersonaPath)
	}

	var mailer mail.Mailer = mail.Noop{}
	if cfg.SMTP.Enabled() {
		smtp, err := mail.NewSMTP(cfg.SMTP)
		if err != nil {
			slog.Error("Failed to initialize SMTP client", "error", err)
			os.Exit(1)
		}
		mailer = smtp
		slog.Info("Contact notifications enabled", "host", cfg.SMTP.Host, "to", cfg.SMTP.To)
	} else {
		slog.Info("Contact notifications disabled (SMTP not configured)")
	}

	transcript, err := assistant.NewTranscriptLogger(assistant.TranscriptConfig{
		Enabled:   cfg.TranscriptLog.Enabled,
		Dir:       cfg.TranscriptLog.Dir,
		QueueSize: cfg.TranscriptLog.QueueSize,
	})
	if err != nil {
		slog.Error("Failed to initialize transcript logger", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := transcript.Close(); closeErr != nil {
			slog.Error("Failed to close transcript logger", "error", closeErr)
		}
	}()

	// Background queue for the fire-and-forget work: session persistence
	// and contact notification email.
	tasks := task.NewQueue(256, 15*time.Second)
	defer tasks.Close()

	chatService := assistant.NewService(generator, repo, persona, assistant.Options{
		HistoryWindow: cfg.Chat.HistoryWindow,
		PromptWindow:  cfg.Chat.PromptWindow,
		SessionTTL:    cfg.Chat.SessionTTL,
	}, tasks, transcript)

	handler := api.NewHandler(chatService, repo, mailer, tasks, cfg.Chat)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	handler.RegisterRoutes(r)

	// Serve embedded frontend (SPA catch-all).
	r.Handle("/*", web.SPAHandler())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start expired-session sweeper.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store.StartSweeper(ctx, repo, 10*time.Minute)
	slog.Info("Session sweeper started", "session_ttl", cfg.Chat.SessionTTL)

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
