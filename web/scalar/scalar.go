// Package scalar serves the Scalar API reference UI for the OpenAPI document.
package scalar

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/advocates/pkg/module"
	"github.com/JaimeStill/advocates/pkg/web"
)

//go:embed index.html scalar.css
var staticFS embed.FS

// NewModule creates a module that serves the Scalar API reference UI at basePath,
// rendering the OpenAPI document found at specURL.
func NewModule(basePath, specURL string) *module.Module {
	router := buildRouter(basePath, specURL)
	return module.New(basePath, router)
}

func buildRouter(basePath, specURL string) http.Handler {
	mux := http.NewServeMux()

	tmpl := template.Must(template.ParseFS(staticFS, "index.html"))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		tmpl.Execute(w, map[string]string{
			"BasePath": basePath,
			"SpecURL":  specURL,
		})
	})

	css, err := staticFS.ReadFile("scalar.css")
	if err != nil {
		panic("scalar.css missing from embedded assets: " + err.Error())
	}
	mux.HandleFunc("GET /scalar.css", web.ServeEmbeddedFile(css, "text/css; charset=utf-8"))

	return mux
}
