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
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/siteoptz/capture-service/internal/config"
	"github.com/siteoptz/capture-service/internal/infra/database"
	"github.com/siteoptz/capture-service/internal/infra/http/handlers"
	"github.com/siteoptz/capture-service/internal/infra/http/middleware"
	"github.com/siteoptz/capture-service/internal/infra/mail"
	"github.com/siteoptz/capture-service/internal/infra/queue"
	"github.com/siteoptz/capture-service/internal/token"
	"github.com/siteoptz/capture-service/internal/usecase"
)

func main() {
	godotenv.Load()

	logger := slog.New(tint.NewHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		logger.Error("run migrations", "error", err)
		os.Exit(1)
	}

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Error("connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		logger.Error("connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repositories
	leadRepo := database.NewLeadRepository(db)
	quoteRepo := database.NewQuoteRepository(db)

	// Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	sender := mail.NewSender(cfg.Env, cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, logger)

	// Email worker (consumes the quote-email queue)
	emailWorker := queue.NewWorker(rabbitMQ.Ch, sender, logger)
	go func() {
		if err := emailWorker.Start(ctx, queue.QueueName); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("quote email worker stopped", "error", err)
		}
	}()

	// Use cases
	captureLeadUC := usecase.NewCaptureLeadUseCase(leadRepo)
	createQuoteUC := usecase.NewCreateQuoteUseCase(quoteRepo, token.NewGenerator(), producer, cfg.BaseURL, logger)

	// Handlers
	leadHandler := handlers.NewLeadHandler(captureLeadUC)
	quoteHandler := handlers.NewQuoteHandler(createQuoteUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMin)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/leads", leadHandler.Handle)
		r.Post("/quotes", quoteHandler.Handle)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("capture API listening", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
