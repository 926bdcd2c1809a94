package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Sender dispatches quote notifications. Implementations must be safe for
// concurrent use.
type Sender interface {
	SendQuoteEmail(to, toolName, deepLink string) error
	SendQuoteReminder(to, toolName, deepLink string, expiresAt time.Time) error
}

func NewSMTPSender(host string, port int, user, password, from string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *SMTPSender) SendQuoteEmail(to, toolName, deepLink string) error {
	body, err := renderTemplate("quote.html", QuoteEmailData{
		ToolName:      toolName,
		DeepLink:      deepLink,
		ExpiresInDays: 7,
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Your %s pricing quote is ready", toolName)
	return s.send(to, subject, body)
}

func (s *SMTPSender) SendQuoteReminder(to, toolName, deepLink string, expiresAt time.Time) error {
	body, err := renderTemplate("reminder.html", ReminderEmailData{
		ToolName:  toolName,
		DeepLink:  deepLink,
		ExpiresOn: expiresAt.Format("January 2, 2006"),
	})
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Your %s quote expires soon", toolName)
	return s.send(to, subject, body)
}

func (s *SMTPSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email via SMTP: %w", err)
	}

	return nil
}

func renderTemplate(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("render email template %s: %w", name, err)
	}
	return body.String(), nil
}

// LogSender logs instead of sending, for local development without SMTP.
type LogSender struct {
	Logger *slog.Logger
}

func (s *LogSender) SendQuoteEmail(to, toolName, deepLink string) error {
	s.Logger.Info("quote email (local dev)",
		"to", to, "tool", toolName, "deep_link", deepLink)
	return nil
}

func (s *LogSender) SendQuoteReminder(to, toolName, deepLink string, expiresAt time.Time) error {
	s.Logger.Info("quote reminder email (local dev)",
		"to", to, "tool", toolName, "deep_link", deepLink, "expires_at", expiresAt)
	return nil
}

// NewSender returns a LogSender when ENV=local, an SMTPSender otherwise.
func NewSender(env, host string, port int, user, password, from string, logger *slog.Logger) Sender {
	if env == "local" {
		return &LogSender{Logger: logger}
	}
	return NewSMTPSender(host, port, user, password, from)
}
