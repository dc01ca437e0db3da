// Package app serves the browser listing view for the advocates directory.
package app

import (
	"embed"
	"net/http"
	"slices"
	"time"

	"github.com/JaimeStill/advocates/pkg/module"
	"github.com/JaimeStill/advocates/pkg/web"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const layout = "app"

var (
	listView = web.ViewDef{
		Route:    "/{$}",
		Template: "advocates.html",
		Title:    "Advocates",
		Bundle:   "app",
	}
	notFoundView = web.ViewDef{
		Template: "not-found.html",
		Title:    "Not Found",
		Bundle:   "app",
	}
)

// PageSizeOptions are the page sizes offered by the page-size selector.
var PageSizeOptions = []int{10, 20, 50, 100}

// Config is handed to the listing script as JSON.
type Config struct {
	Endpoint        string `json:"endpoint"`
	DefaultPageSize int    `json:"defaultPageSize"`
	PageSizes       []int  `json:"pageSizes"`
	DebounceMs      int64  `json:"debounceMs"`
}

// NewConfig builds the listing script config. Page sizes above maxPageSize are
// not offered and defaultPageSize is always selectable.
func NewConfig(endpoint string, defaultPageSize, maxPageSize int, debounce time.Duration) Config {
	sizes := make([]int, 0, len(PageSizeOptions)+1)
	for _, s := range PageSizeOptions {
		if s <= maxPageSize {
			sizes = append(sizes, s)
		}
	}
	if !slices.Contains(sizes, defaultPageSize) {
		sizes = append(sizes, defaultPageSize)
		slices.Sort(sizes)
	}

	return Config{
		Endpoint:        endpoint,
		DefaultPageSize: defaultPageSize,
		PageSizes:       sizes,
		DebounceMs:      debounce.Milliseconds(),
	}
}

// NewModule creates the app module serving the listing page, its static assets,
// and a not-found page for every other path.
func NewModule(basePath string, cfg Config) (*module.Module, error) {
	ts, err := web.NewTemplateSet(
		templateFS, templateFS,
		"templates/layouts/*.html", "templates/views",
		basePath,
		[]web.ViewDef{listView, notFoundView},
	)
	if err != nil {
		return nil, err
	}

	router := web.NewRouter()
	router.HandleFunc("GET "+listView.Route, ts.PageHandler(layout, listView, cfg))
	router.Handle("GET /static/", web.DistServer(staticFS, "static", "/static/"))

	for _, r := range web.PublicFileRoutes(staticFS, "static", "favicon.svg") {
		router.HandleFunc(r.Method+" "+r.Pattern, r.Handler)
	}

	router.SetFallback(ts.ErrorHandler(layout, notFoundView, http.StatusNotFound))

	return module.New(basePath, router), nil
}
