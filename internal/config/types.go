// Package config manages application configuration from environment variables,
// config files, and default values.
package config

import (
	"errors"
	"time"
)

// ErrConfiguration wraps every failure returned by Load.
var ErrConfiguration = errors.New("configuration error")

// Config defines the application configuration. Values can be set via environment
// variables prefixed with RESTOBOT_ (e.g., RESTOBOT_HTTP_APP_BASE_URL) or through config.yaml.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Database  DatabaseConfig  `mapstructure:"database"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Publisher PublisherConfig `mapstructure:"publisher"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LoggerConfig controls the slog handler and the optional rotating file sink.
type LoggerConfig struct {
	Level      string `mapstructure:"level"        validate:"oneof=debug info warn error"`
	JSON       bool   `mapstructure:"json"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"  validate:"min=1"`
	MaxBackups int    `mapstructure:"max_backups"  validate:"min=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"min=0"`
}

// DatabaseConfig points at the SQLite file holding tenants, recipients and news.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
	// EncryptionKey is a 64-char hex key used to seal bot tokens at rest.
	// Empty keeps tokens in plaintext.
	EncryptionKey string `mapstructure:"encryption_key" validate:"omitempty,hexadecimal,len=64"`
}

// HTTPConfig holds the listener and the public base URL used for Mini App and webhook URLs.
type HTTPConfig struct {
	Addr              string        `mapstructure:"addr"                validate:"required"`
	AppBaseURL        string        `mapstructure:"app_base_url"        validate:"required,url"`
	AdminToken        string        `mapstructure:"admin_token"`
	AllowedOrigins    []string      `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"min=1s,max=1m"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"    validate:"min=1s,max=1m"`
}

// TelegramConfig configures the Bot API transport and bot provisioning.
type TelegramConfig struct {
	APIBaseURL      string        `mapstructure:"api_base_url"     validate:"required,url"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"  validate:"min=1s,max=1m"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"  validate:"min=1s,max=5m"`
	WebhookSecret   string        `mapstructure:"webhook_secret"`
	MaxConnections  int           `mapstructure:"max_connections"  validate:"min=1,max=100"`
	DefaultLanguage string        `mapstructure:"default_language" validate:"required,oneof=en ru"`
}

// PublisherConfig controls fan-out of published content to recipients.
type PublisherConfig struct {
	Workers        int           `mapstructure:"workers"         validate:"min=1,max=64"`
	MaxAttempts    int           `mapstructure:"max_attempts"    validate:"min=1,max=10"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff" validate:"min=10ms,max=1m"`
	MaxBackoff     time.Duration `mapstructure:"max_backoff"     validate:"min=10ms,max=10m"`
	RatePerSecond  float64       `mapstructure:"rate_per_second" validate:"gt=0,max=30"`
	JobTimeout     time.Duration `mapstructure:"job_timeout"     validate:"min=1s,max=1h"`
}

// SchedulerConfig maps task names to their cron schedule.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks" validate:"dive"`
}

// TaskConfig enables a registered task on a cron schedule.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
}
