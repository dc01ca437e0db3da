// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/advocates/internal/config"
	"github.com/JaimeStill/advocates/internal/infrastructure"
	"github.com/JaimeStill/advocates/pkg/middleware"
	"github.com/JaimeStill/advocates/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, runtime, domain); err != nil {
		return nil, err
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestIDs())
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.Metrics(middleware.NewHTTPMetrics(runtime.Registry)))
	m.Use(middleware.CORS(&cfg.API.CORS))

	return m, nil
}
