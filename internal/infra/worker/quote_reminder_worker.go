// Package worker holds background jobs that run outside the request path.
package worker

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/siteoptz/capture-service/internal/entity"
	"github.com/siteoptz/capture-service/internal/infra/http/middleware"
)

type QuoteSource interface {
	FindDueForReminder(ctx context.Context, window time.Duration) ([]*entity.Quote, error)
	MarkReminded(ctx context.Context, quoteID string) error
}

type ReminderSender interface {
	SendQuoteReminder(to, toolName, deepLink string, expiresAt time.Time) error
}

// QuoteReminderWorker emails holders of quotes that are about to expire and
// flips the reminded flag. The Capture API itself never mutates quotes; this
// job is the only writer of that flag.
type QuoteReminderWorker struct {
	quotes       QuoteSource
	sender       ReminderSender
	baseURL      string
	window       time.Duration
	tickInterval time.Duration
	logger       *slog.Logger
}

func NewQuoteReminderWorker(
	quotes QuoteSource,
	sender ReminderSender,
	baseURL string,
	window, tickInterval time.Duration,
	logger *slog.Logger,
) *QuoteReminderWorker {
	return &QuoteReminderWorker{
		quotes:       quotes,
		sender:       sender,
		baseURL:      baseURL,
		window:       window,
		tickInterval: tickInterval,
		logger:       logger,
	}
}

func (w *QuoteReminderWorker) Start(ctx context.Context) {
	w.logger.Info("quote reminder worker started",
		"window", w.window, "interval", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.remindDueQuotes(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("quote reminder worker stopped")
			return
		case <-ticker.C:
			w.remindDueQuotes(ctx)
		}
	}
}

func (w *QuoteReminderWorker) remindDueQuotes(ctx context.Context) {
	quotes, err := w.quotes.FindDueForReminder(ctx, w.window)
	if err != nil {
		w.logger.Error("query quotes due for reminder", "error", err)
		return
	}

	for _, q := range quotes {
		deepLink := w.deepLink(q.QuoteID)

		if err := w.sender.SendQuoteReminder(q.Email, q.ToolName, deepLink, q.ExpiresAt); err != nil {
			// Left unmarked so the next tick retries.
			w.logger.Error("send quote reminder",
				"quote_id", q.QuoteID, "error", err)
			continue
		}

		if err := w.quotes.MarkReminded(ctx, q.QuoteID); err != nil {
			w.logger.Error("mark quote reminded",
				"quote_id", q.QuoteID, "error", err)
			continue
		}

		middleware.RecordQuoteReminder()
		w.logger.Info("quote reminder sent",
			"quote_id", q.QuoteID, "expires_at", q.ExpiresAt)
	}
}

func (w *QuoteReminderWorker) deepLink(quoteID string) string {
	return strings.TrimRight(w.baseURL, "/") + "/pricing?quoteId=" + url.QueryEscape(quoteID)
}
