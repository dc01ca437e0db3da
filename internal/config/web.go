package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	EnvWebBasePath      = "ADVOCATES_WEB_BASE_PATH"
	EnvWebDebounceDelay = "ADVOCATES_WEB_DEBOUNCE_DELAY"
)

// WebConfig holds settings for the listing clients (browser page and terminal browser).
type WebConfig struct {
	BasePath      string `toml:"base_path"`
	DebounceDelay string `toml:"debounce_delay"`
}

// DebounceDelayDuration returns DebounceDelay as a time.Duration.
func (c *WebConfig) DebounceDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.DebounceDelay)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *WebConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *WebConfig) Merge(overlay *WebConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.DebounceDelay != "" {
		c.DebounceDelay = overlay.DebounceDelay
	}
}

func (c *WebConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if c.DebounceDelay == "" {
		c.DebounceDelay = "500ms"
	}
}

func (c *WebConfig) loadEnv() {
	if v := os.Getenv(EnvWebBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvWebDebounceDelay); v != "" {
		c.DebounceDelay = v
	}
}

func (c *WebConfig) validate() error {
	if c.BasePath[0] != '/' {
		return fmt.Errorf("base_path must start with /: %q", c.BasePath)
	}
	if strings.Count(c.BasePath, "/") != 1 {
		return fmt.Errorf("base_path must be a single-level path: %q", c.BasePath)
	}
	d, err := time.ParseDuration(c.DebounceDelay)
	if err != nil {
		return fmt.Errorf("invalid debounce_delay: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("debounce_delay must be positive")
	}
	return nil
}
