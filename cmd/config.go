package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends selectable with STORAGE.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config is read from the environment, optionally seeded from a .env file.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	Storage  string `env:"STORAGE"   envDefault:"memory"`

	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	// RabbitMQURL enables event publishing to RabbitMQ when set.
	RabbitMQURL      string `env:"RABBITMQ_URL"`
	RabbitMQExchange string `env:"RABBITMQ_EXCHANGE" envDefault:"rides"`

	SummarySchedule string `env:"SUMMARY_SCHEDULE" envDefault:"@every 1m"`

	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig loads envFile into the environment when it exists, without
// overriding variables already set, and then parses Config.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown storage backends and log settings.
func (c Config) Validate() error {
	var errs []error

	if c.Storage != StorageMemory && c.Storage != StoragePostgres {
		errs = append(errs, fmt.Errorf("STORAGE must be %q or %q, got %q", StorageMemory, StoragePostgres, c.Storage))
	}
	if c.Storage == StoragePostgres && (c.DBUser == "" || c.DBName == "") {
		errs = append(errs, errors.New("DB_USER and DB_NAME are required for postgres storage"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != LogFormatJSON && c.LogFormat != LogFormatText {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be %q or %q, got %q", LogFormatJSON, LogFormatText, c.LogFormat))
	}

	return errors.Join(errs...)
}

// DSN builds the PostgreSQL connection URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// HTTPAddr is the listen address of the HTTP server.
func (c Config) HTTPAddr() string {
	return net.JoinHostPort("0.0.0.0", c.HTTPPort)
}
