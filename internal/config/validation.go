package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate checks struct tags and the cross-field rules tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if c.Publisher.MaxBackoff < c.Publisher.InitialBackoff {
		return fmt.Errorf("publisher.max_backoff (%s) must not be below publisher.initial_backoff (%s)",
			c.Publisher.MaxBackoff, c.Publisher.InitialBackoff)
	}

	if _, err := url.Parse(c.HTTP.AppBaseURL); err != nil {
		return fmt.Errorf("http.app_base_url: %w", err)
	}

	return nil
}

// AppBaseURL returns the public base URL without a trailing slash.
func (c *Config) AppBaseURL() string {
	return strings.TrimRight(c.HTTP.AppBaseURL, "/")
}
