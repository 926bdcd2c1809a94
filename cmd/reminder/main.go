// The reminder binary runs the quote reminder job as its own process, apart
// from the capture API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/siteoptz/capture-service/internal/config"
	"github.com/siteoptz/capture-service/internal/infra/database"
	"github.com/siteoptz/capture-service/internal/infra/mail"
	"github.com/siteoptz/capture-service/internal/infra/worker"
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

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Error("connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	quoteRepo := database.NewQuoteRepository(db)
	sender := mail.NewSender(cfg.Env, cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := worker.NewQuoteReminderWorker(
		quoteRepo,
		sender,
		cfg.BaseURL,
		cfg.ReminderWindow,
		cfg.ReminderInterval,
		logger,
	)
	w.Start(ctx)
}
