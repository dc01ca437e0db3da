package api

import (
	"github.com/JaimeStill/advocates/internal/config"
	"github.com/JaimeStill/advocates/internal/infrastructure"
	"github.com/JaimeStill/advocates/pkg/openapi"
	"github.com/JaimeStill/advocates/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	OpenAPI    openapi.Config
	BasePath   string
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Registry:  infra.Registry,
		},
		Pagination: cfg.API.Pagination,
		OpenAPI:    cfg.API.OpenAPI,
		BasePath:   cfg.API.BasePath,
	}
}
