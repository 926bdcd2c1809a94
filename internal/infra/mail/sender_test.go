package mail

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderQuoteEmail(t *testing.T) {
	body, err := renderTemplate("quote.html", QuoteEmailData{
		ToolName:      "ChatGPT",
		DeepLink:      "https://siteoptz.ai/pricing?quoteId=Ab3dEf9h",
		ExpiresInDays: 7,
	})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, `href="https://siteoptz.ai/pricing?quoteId=Ab3dEf9h"`)
	assert.Contains(t, body, "ChatGPT")
	assert.Contains(t, body, "expires in 7 days")
}

func TestRenderReminderEmail(t *testing.T) {
	body, err := renderTemplate("reminder.html", ReminderEmailData{
		ToolName:  "Claude",
		DeepLink:  "https://siteoptz.ai/pricing?quoteId=Zz8xYy1w",
		ExpiresOn: "March 14, 2026",
	})

	assert.NoError(t, err)
	assert.Contains(t, body, `href="https://siteoptz.ai/pricing?quoteId=Zz8xYy1w"`)
	assert.Contains(t, body, "Claude")
	assert.Contains(t, body, "March 14, 2026")
}

func TestRenderEscapesToolName(t *testing.T) {
	body, err := renderTemplate("quote.html", QuoteEmailData{
		ToolName:      `<script>alert("x")</script>`,
		DeepLink:      "https://siteoptz.ai/pricing?quoteId=Ab3dEf9h",
		ExpiresInDays: 7,
	})

	assert.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestNewSenderLocalEnv(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := NewSender("local", "", 587, "", "", "no-reply@siteoptz.ai", logger)
	_, ok := s.(*LogSender)
	assert.True(t, ok)

	assert.NoError(t, s.SendQuoteEmail("a@b.com", "ChatGPT", "https://siteoptz.ai/pricing?quoteId=x"))
	assert.NoError(t, s.SendQuoteReminder("a@b.com", "ChatGPT", "https://siteoptz.ai/pricing?quoteId=x", time.Now()))
}

func TestNewSenderProductionEnv(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := NewSender("production", "smtp.example.com", 587, "user", "pass", "no-reply@siteoptz.ai", logger)
	smtp, ok := s.(*SMTPSender)
	assert.True(t, ok)
	assert.Equal(t, "smtp.example.com", smtp.Host)
	assert.Equal(t, "no-reply@siteoptz.ai", smtp.From)
}
