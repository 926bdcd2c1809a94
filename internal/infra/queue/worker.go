package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/siteoptz/capture-service/internal/infra/http/middleware"
)

// MailSender is the contract the email worker needs from the mail layer.
type MailSender interface {
	SendQuoteEmail(to, toolName, deepLink string) error
}

// Worker consumes quote-email messages and sends them over SMTP. It holds no
// database handle: persistence and notification stay decoupled.
type Worker struct {
	Channel *amqp.Channel
	Sender  MailSender
	Logger  *slog.Logger
}

func NewWorker(ch *amqp.Channel, sender MailSender, logger *slog.Logger) *Worker {
	return &Worker{Channel: ch, Sender: sender, Logger: logger}
}

func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	w.Logger.Info("quote email worker waiting", "queue", queueName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			w.handleDelivery(d)
		}
	}
}

func (w *Worker) handleDelivery(d amqp.Delivery) {
	var payload QuoteEmailPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		w.Logger.Error("malformed quote email payload", "error", err)
		// Poison message, reject without requeue so it dead-letters.
		d.Nack(false, false)
		return
	}

	if err := w.Sender.SendQuoteEmail(payload.Email, payload.ToolName, payload.DeepLink); err != nil {
		w.Logger.Error("quote email send failed",
			"quote_id", payload.QuoteID, "error", err)
		middleware.RecordQuoteEmail("error")
		d.Nack(false, false)
		return
	}

	w.Logger.Info("quote email sent",
		"quote_id", payload.QuoteID, "tool", payload.ToolName)
	middleware.RecordQuoteEmail("sent")
	d.Ack(false)
}
