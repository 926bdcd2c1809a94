package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port string `env:"PORT" envDefault:"8080" validate:"required"`

	DatabaseURL string `env:"DATABASE_URL,required" validate:"required"`

	// BaseURL is the public site origin used to build quote deep links.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080" validate:"required,url"`

	RabbitUser string `env:"RABBITMQ_USER" envDefault:"guest"`
	RabbitPass string `env:"RABBITMQ_PASS" envDefault:"guest"`
	RabbitHost string `env:"RABBITMQ_HOST" envDefault:"localhost"`
	RabbitPort string `env:"RABBITMQ_PORT" envDefault:"5672"`

	MailHost string `env:"MAIL_HOST" validate:"required_if=Env production,required_if=Env staging"`
	MailPort int    `env:"MAIL_PORT" envDefault:"587"`
	MailUser string `env:"MAIL_USER"`
	MailPass string `env:"MAIL_PASS"`
	MailFrom string `env:"MAIL_FROM" envDefault:"no-reply@siteoptz.ai"`

	RateLimitPerMin int `env:"RATE_LIMIT_PER_MIN" envDefault:"10" validate:"min=1"`

	ReminderWindow   time.Duration `env:"REMINDER_WINDOW" envDefault:"24h"`
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL" envDefault:"15m"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
