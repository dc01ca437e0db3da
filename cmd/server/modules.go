package main

import (
	"net/http"

	"github.com/JaimeStill/advocates/internal/api"
	"github.com/JaimeStill/advocates/internal/config"
	"github.com/JaimeStill/advocates/internal/infrastructure"
	"github.com/JaimeStill/advocates/pkg/handlers"
	"github.com/JaimeStill/advocates/pkg/lifecycle"
	"github.com/JaimeStill/advocates/pkg/middleware"
	"github.com/JaimeStill/advocates/pkg/module"
	"github.com/JaimeStill/advocates/web/app"
	"github.com/JaimeStill/advocates/web/scalar"
)

type Modules struct {
	API    *module.Module
	App    *module.Module
	Scalar *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(
		cfg.Web.BasePath,
		app.NewConfig(
			cfg.API.BasePath+"/advocates",
			cfg.API.Pagination.DefaultPageSize,
			cfg.API.Pagination.MaxPageSize,
			cfg.Web.DebounceDelayDuration(),
		),
	)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))

	scalarModule := scalar.NewModule("/scalar", cfg.API.BasePath+api.SpecPath)
	scalarModule.Use(middleware.Logger(infra.Logger.With("module", "scalar")))

	return &Modules{
		API:    apiModule,
		App:    appModule,
		Scalar: scalarModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
	router.Mount(m.Scalar)
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "ok")
	}))
	router.HandleNative("GET /readyz", readiness(infra.Lifecycle))
	router.HandleNative("GET /metrics", infra.MetricsHandler())
	router.Redirect("GET /{$}", cfg.Web.BasePath)

	return router
}

func readiness(checker lifecycle.ReadinessChecker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !checker.Ready() {
			writeStatus(w, http.StatusServiceUnavailable, "not ready")
			return
		}
		writeStatus(w, http.StatusOK, "ready")
	})
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	handlers.RespondJSON(w, code, map[string]string{"status": status})
}
