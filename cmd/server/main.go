package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/flashlearn/backend/internal/api"
	"github.com/flashlearn/backend/internal/assist"
	"github.com/flashlearn/backend/internal/auth"
	"github.com/flashlearn/backend/internal/infrastructure/config"
	"github.com/flashlearn/backend/internal/service"
	"github.com/flashlearn/backend/internal/store"

	_ "github.com/flashlearn/backend/docs" // generated swagger docs
)

// @title           FlashLearn API
// @version         1.0
// @description     Flashcard study backend — create cards, quiz yourself, and track mastery over time.

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := openStore(cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	authn := auth.New(cfg.JWTSecret, cfg.TokenTTL)
	quizSvc := service.NewQuizService(db, logger)
	defer quizSvc.Close()

	assistant := assist.NewLLMAssistant(cfg.LLMURL, cfg.LLMAPIKey, cfg.LLMModel)
	handler := api.NewHandler(db, authn, quizSvc, assistant, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	handler.RegisterRoutes(mux)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := handler.Logging(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "driver", cfg.DBDriver)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// openStore picks the persistence backend: a local SQLite file by default,
// or Postgres when DB_DRIVER=postgres.
func openStore(cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	if cfg.DBDriver == "postgres" {
		logger.Info("using postgres store")
		return store.NewPostgres(context.Background(), cfg.DatabaseURL)
	}
	logger.Info("using sqlite store", "path", cfg.DBPath)
	return store.NewSQLite(cfg.DBPath)
}
