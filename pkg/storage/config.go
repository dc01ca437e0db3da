package storage

import (
	"fmt"
	"os"

	"github.com/JaimeStill/advocates/pkg/formatting"
)

// Config holds Azure Blob Storage connection parameters for reading seed data.
// Either ConnectionString or AccountURL selects the account; AccountURL
// authenticates with the default Azure credential chain.
type Config struct {
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
	AccountURL       string `toml:"account_url"`
	MaxDownloadSize  string `toml:"max_download_size"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	ContainerName    string
	ConnectionString string
	AccountURL       string
	MaxDownloadSize  string
}

// Finalize applies defaults, environment variable overrides, and validation.
// Credentials are not required here; New reports ErrNotConfigured when they are absent.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.ContainerName != "" {
		c.ContainerName = overlay.ContainerName
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
	if overlay.AccountURL != "" {
		c.AccountURL = overlay.AccountURL
	}
	if overlay.MaxDownloadSize != "" {
		c.MaxDownloadSize = overlay.MaxDownloadSize
	}
}

// Configured reports whether an account has been selected.
func (c *Config) Configured() bool {
	return c.ConnectionString != "" || c.AccountURL != ""
}

// MaxDownloadBytes returns MaxDownloadSize in bytes.
func (c *Config) MaxDownloadBytes() int64 {
	n, err := formatting.ParseBytes(c.MaxDownloadSize)
	if err != nil {
		return defaultMaxDownload
	}
	return n
}

const defaultMaxDownload = 8 * 1024 * 1024

func (c *Config) loadDefaults() {
	if c.ContainerName == "" {
		c.ContainerName = "seed"
	}
	if c.MaxDownloadSize == "" {
		c.MaxDownloadSize = "8MB"
	}
}

func (c *Config) loadEnv(env *Env) {
	for _, o := range []struct {
		key string
		dst *string
	}{
		{env.ContainerName, &c.ContainerName},
		{env.ConnectionString, &c.ConnectionString},
		{env.AccountURL, &c.AccountURL},
		{env.MaxDownloadSize, &c.MaxDownloadSize},
	} {
		if o.key == "" {
			continue
		}
		if v := os.Getenv(o.key); v != "" {
			*o.dst = v
		}
	}
}

func (c *Config) validate() error {
	if c.ContainerName == "" {
		return fmt.Errorf("container_name required")
	}
	n, err := formatting.ParseBytes(c.MaxDownloadSize)
	if err != nil {
		return fmt.Errorf("invalid max_download_size: %w", err)
	}
	if n <= 0 {
		return fmt.Errorf("max_download_size must be positive")
	}
	return nil
}
