package openapi

import "os"

// Config holds OpenAPI metadata for document generation.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Version     string `toml:"version"`
}

// ConfigEnv maps config fields to environment variable names for override injection.
type ConfigEnv struct {
	Title       string
	Description string
	Version     string
}

// Finalize applies defaults and environment variable overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Advocates API"
	}
	if c.Description == "" {
		c.Description = "Searchable, paginated directory of advocates."
	}
	if c.Version == "" {
		c.Version = "1.0.0"
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if env.Title != "" {
		if v := os.Getenv(env.Title); v != "" {
			c.Title = v
		}
	}
	if env.Description != "" {
		if v := os.Getenv(env.Description); v != "" {
			c.Description = v
		}
	}
	if env.Version != "" {
		if v := os.Getenv(env.Version); v != "" {
			c.Version = v
		}
	}
}
