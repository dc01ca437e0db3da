package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/advocates/internal/advocates"
	"github.com/JaimeStill/advocates/pkg/openapi"
	"github.com/JaimeStill/advocates/pkg/routes"
)

// SpecPath is the module-relative path of the served OpenAPI document.
const SpecPath = "/openapi.json"

func groups(domain *Domain) []routes.Group {
	return []routes.Group{
		domain.Advocates.Handler().Routes(),
	}
}

// Spec builds the OpenAPI document describing every documented API route.
func Spec(runtime *Runtime, domain *Domain) *openapi.Spec {
	spec := openapi.FromConfig(&runtime.OpenAPI)
	spec.Components.AddSchemas(advocates.Schemas())
	routes.Describe(spec, runtime.BasePath, groups(domain)...)
	return spec
}

func registerRoutes(mux *http.ServeMux, runtime *Runtime, domain *Domain) error {
	routes.Register(mux, groups(domain)...)

	specBytes, err := openapi.MarshalJSON(Spec(runtime, domain))
	if err != nil {
		return fmt.Errorf("marshal openapi spec: %w", err)
	}
	mux.HandleFunc("GET "+SpecPath, openapi.ServeSpec(specBytes))

	return nil
}
