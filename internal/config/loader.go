package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys.
const EnvPrefix = "RESTOBOT"

// Load loads and validates configuration from:
// 1. Default values
// 2. the YAML file at path (optional; empty path searches ./config.yaml)
// 3. RESTOBOT_* environment variables
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := readConfig(v, path); err != nil {
		return nil, fmt.Errorf("%w: failed to load config file: %v", ErrConfiguration, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return cfg, nil
}

// readConfig wires the file and environment sources into v.
func readConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found is okay, we'll use defaults and env
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

// setDefaults sets default values for optional configuration parameters.
// Every key is registered so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", DefaultLogLevel)
	v.SetDefault("logger.json", DefaultLogJSON)
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size_mb", DefaultLogMaxSizeMB)
	v.SetDefault("logger.max_backups", DefaultLogMaxBackups)
	v.SetDefault("logger.max_age_days", DefaultLogMaxAgeDays)

	v.SetDefault("database.path", DefaultDBPath)
	v.SetDefault("database.encryption_key", "")

	v.SetDefault("http.addr", DefaultHTTPAddr)
	v.SetDefault("http.app_base_url", "")
	v.SetDefault("http.admin_token", "")
	v.SetDefault("http.allowed_origins", []string{"https://web.telegram.org"})
	v.SetDefault("http.read_header_timeout", DefaultHTTPReadHeaderTimeout)
	v.SetDefault("http.shutdown_timeout", DefaultHTTPShutdownTimeout)

	v.SetDefault("telegram.api_base_url", DefaultTelegramAPIBaseURL)
	v.SetDefault("telegram.connect_timeout", DefaultTelegramConnectTimeout)
	v.SetDefault("telegram.request_timeout", DefaultTelegramRequestTimeout)
	v.SetDefault("telegram.webhook_secret", "")
	v.SetDefault("telegram.max_connections", DefaultTelegramMaxConnections)
	v.SetDefault("telegram.default_language", DefaultTelegramLanguage)

	v.SetDefault("publisher.workers", DefaultPublisherWorkers)
	v.SetDefault("publisher.max_attempts", DefaultPublisherMaxAttempts)
	v.SetDefault("publisher.initial_backoff", DefaultPublisherInitialBackoff)
	v.SetDefault("publisher.max_backoff", DefaultPublisherMaxBackoff)
	v.SetDefault("publisher.rate_per_second", DefaultPublisherRatePerSecond)
	v.SetDefault("publisher.job_timeout", DefaultPublisherJobTimeout)

	for name, task := range DefaultTasks {
		v.SetDefault("scheduler.tasks."+name+".enabled", task.Enabled)
		v.SetDefault("scheduler.tasks."+name+".schedule", task.Schedule)
	}
}
