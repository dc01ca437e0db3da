package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/advocates/pkg/middleware"
	"github.com/JaimeStill/advocates/pkg/openapi"
	"github.com/JaimeStill/advocates/pkg/pagination"
)

const EnvAPIBasePath = "ADVOCATES_API_BASE_PATH"

var corsEnv = &middleware.CORSEnv{
	Enabled:          "ADVOCATES_CORS_ENABLED",
	Origins:          "ADVOCATES_CORS_ORIGINS",
	AllowedMethods:   "ADVOCATES_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "ADVOCATES_CORS_ALLOWED_HEADERS",
	AllowCredentials: "ADVOCATES_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "ADVOCATES_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "ADVOCATES_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "ADVOCATES_PAGINATION_MAX_PAGE_SIZE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "ADVOCATES_OPENAPI_TITLE",
	Description: "ADVOCATES_OPENAPI_DESCRIPTION",
	Version:     "ADVOCATES_OPENAPI_VERSION",
}

// APIConfig holds API routing, CORS, pagination, and OpenAPI settings.
type APIConfig struct {
	BasePath   string                `toml:"base_path"`
	CORS       middleware.CORSConfig `toml:"cors"`
	Pagination pagination.Config     `toml:"pagination"`
	OpenAPI    openapi.Config        `toml:"openapi"`
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
}

func (c *APIConfig) validate() error {
	if c.BasePath[0] != '/' {
		return fmt.Errorf("base_path must start with /: %q", c.BasePath)
	}
	if strings.Count(c.BasePath, "/") != 1 {
		return fmt.Errorf("base_path must be a single-level path: %q", c.BasePath)
	}
	return nil
}
