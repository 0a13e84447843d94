package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Server.CallbackRateLimit <= 0 {
		return fmt.Errorf("server.callback_rate_limit must be > 0 (got %d)", c.Server.CallbackRateLimit)
	}

	if err := c.Screenshot.validate(); err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	return nil
}

func (s *ScreenshotConfig) validate() error {
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}
	if s.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must be >= 0 (got %v)", s.RetryDelay)
	}
	if s.Enabled() {
		if err := validateAbsURL(s.Endpoint); err != nil {
			return fmt.Errorf("endpoint: %w", err)
		}
	}
	if s.CallbackBaseURL != "" {
		if err := validateAbsURL(s.CallbackBaseURL); err != nil {
			return fmt.Errorf("callback_base_url: %w", err)
		}
	}
	return nil
}

func validateAbsURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("scheme must be http or https")
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}
