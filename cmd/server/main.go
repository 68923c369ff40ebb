package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cortexa-ai/backend/internal/config"
	"github.com/cortexa-ai/backend/internal/handler"
	"github.com/cortexa-ai/backend/internal/logging"
	"github.com/cortexa-ai/backend/internal/repository"
	"github.com/cortexa-ai/backend/internal/service"
	"github.com/cortexa-ai/backend/pkg/mail"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	logging.Setup("cortexa-backend")

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	submissionRepo := repository.NewPgSubmissionRepository(pool)
	if err := submissionRepo.EnsureSchema(ctx); err != nil {
		logging.Fatal("failed to ensure schema", "error", err)
	}

	mailer := mail.NewClient(cfg.SendGridAPIKey, cfg.FromEmail, cfg.AdminEmail, cfg.SendConfirmation)
	if !mailer.Configured() {
		slog.Warn("mail client not configured; submission notifications disabled")
	}

	submissionService := service.NewSubmissionService(submissionRepo, mailer)

	h := handler.New(repository.NewPgDB(pool), cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(submissionService, !cfg.IsProduction())
	legalHandler := handler.NewLegalHandler(handler.LegalConfig{DocsDir: cfg.LegalDocsDir})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/db-health", h.DBHealth)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/legal/{type}", legalHandler.Legal)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.SecurityHeaders(h.CORS(handler.RequestLogger(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
