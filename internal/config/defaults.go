package config

import "time"

// Default values for configuration
const (
	// Log defaults
	DefaultLogLevel      = "info"
	DefaultLogJSON       = true
	DefaultLogMaxSizeMB  = 50
	DefaultLogMaxBackups = 5
	DefaultLogMaxAgeDays = 28

	// Database defaults
	DefaultDBPath = "restobot.db"

	// HTTP defaults
	DefaultHTTPAddr              = ":8080"
	DefaultHTTPReadHeaderTimeout = 10 * time.Second
	DefaultHTTPShutdownTimeout   = 5 * time.Second

	// Telegram defaults
	DefaultTelegramAPIBaseURL     = "https://api.telegram.org"
	DefaultTelegramConnectTimeout = 10 * time.Second
	DefaultTelegramRequestTimeout = 30 * time.Second
	DefaultTelegramMaxConnections = 40
	DefaultTelegramLanguage       = "en"

	// Publisher defaults
	DefaultPublisherWorkers        = 4
	DefaultPublisherMaxAttempts    = 1
	DefaultPublisherInitialBackoff = 500 * time.Millisecond
	DefaultPublisherMaxBackoff     = 10 * time.Second
	DefaultPublisherRatePerSecond  = 25
	DefaultPublisherJobTimeout     = 10 * time.Minute
)

// DefaultTasks are the scheduled tasks enabled out of the box.
var DefaultTasks = map[string]TaskConfig{
	"sql_maintenance": {Enabled: true, Schedule: "0 30 3 * * *"},
	"webhook_audit":   {Enabled: true, Schedule: "0 0 */6 * * *"},
}
